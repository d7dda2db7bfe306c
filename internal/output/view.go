package output

import (
	"encoding/json"
	"io"
)

// View is the column/row form of a dataset that the web page renders.
type View struct {
	Kind   string      `json:"kind"`
	Fields []ViewField `json:"fields"`
	Rows   [][]Cell    `json:"rows"`
}

type ViewField struct {
	Key    string `json:"key"`
	Header string `json:"header"`
	Right  bool   `json:"right,omitempty"`
}

// Cell carries the swatch color or the WCAG level of a painted cell.
type Cell struct {
	Text      string `json:"text"`
	Color     string `json:"color,omitempty"`
	Level     string `json:"level,omitempty"`
	Indicator string `json:"indicator,omitempty"`
}

func NewView(ds Dataset, sel FieldSelection) View {
	v := View{Kind: ds.Kind, Fields: make([]ViewField, len(sel.Fields)), Rows: make([][]Cell, 0, len(ds.Records))}
	for i, f := range sel.Fields {
		v.Fields[i] = ViewField{Key: f.Key, Header: f.Header, Right: f.Right}
	}
	for _, rec := range ds.Records {
		row := make([]Cell, len(sel.Fields))
		for i, f := range sel.Fields {
			cell := Cell{Text: rec.Values[f.Key]}
			if c, ok := rec.Colors[f.Key]; ok {
				cell.Color = c.Hex()
			}
			if lv, ok := rec.Levels[f.Key]; ok {
				cell.Level = string(lv)
				cell.Indicator = lv.Indicator()
			}
			row[i] = cell
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

// WriteView writes NewView(ds, sel) as compact JSON.
func WriteView(w io.Writer, ds Dataset, sel FieldSelection) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(NewView(ds, sel))
}
