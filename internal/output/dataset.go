package output

import (
	"fmt"
	"strings"

	"github.com/phyten/palettex/internal/colorutil"
)

type Field struct {
	Key    string
	Header string
	Right  bool
}

type FieldSelection struct {
	Fields []Field
}

// Record is one output row. Values are keyed by field key; Colors and
// Levels mark cells the terminal writers paint as swatches or WCAG badges.
type Record struct {
	Values map[string]string
	Colors map[string]colorutil.RGB
	Levels map[string]colorutil.Level
	Data   any
}

// Dataset is what every command hands to a writer. Payload, when set, is
// the JSON document; otherwise JSON gets the records' Data.
type Dataset struct {
	Kind    string
	Fields  []Field
	Records []Record
	Payload any
}

// ResolveFields picks columns from ds by a comma-separated key list.
// An empty list selects every field in its default order.
func ResolveFields(raw string, ds Dataset) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FieldSelection{Fields: append([]Field(nil), ds.Fields...)}, nil
	}
	byKey := make(map[string]Field, len(ds.Fields))
	for _, f := range ds.Fields {
		byKey[f.Key] = f
	}
	parts := strings.Split(raw, ",")
	sel := FieldSelection{Fields: make([]Field, 0, len(parts))}
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
		}
		f, ok := byKey[strings.ToLower(name)]
		if !ok {
			return FieldSelection{}, fmt.Errorf("unknown field for %s: %s", ds.Kind, name)
		}
		sel.Fields = append(sel.Fields, f)
	}
	return sel, nil
}

func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

func RowValues(rec Record, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = rec.Values[f.Key]
	}
	return out
}

func (ds Dataset) jsonDocument() any {
	if ds.Payload != nil {
		return ds.Payload
	}
	docs := make([]any, 0, len(ds.Records))
	for _, rec := range ds.Records {
		docs = append(docs, rec.Data)
	}
	return docs
}
