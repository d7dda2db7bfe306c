package output

import (
	"encoding/csv"
	"io"
)

// WriteCSV renders records as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, ds Dataset, sel FieldSelection) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers(sel.Fields)); err != nil {
		return err
	}
	for _, rec := range ds.Records {
		if err := writer.Write(RowValues(rec, sel.Fields)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
