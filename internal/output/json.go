package output

import (
	"encoding/json"
	"io"
)

// WriteJSON writes the dataset as one indented JSON document.
func WriteJSON(w io.Writer, ds Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(ds.jsonDocument())
}

// WriteNDJSON streams each record's data as one JSON object per line.
func WriteNDJSON(w io.Writer, ds Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, rec := range ds.Records {
		if err := enc.Encode(rec.Data); err != nil {
			return err
		}
	}
	return nil
}
