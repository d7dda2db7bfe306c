package output

import (
	"fmt"
	"io"

	"github.com/phyten/palettex/internal/termcolor"
	"github.com/phyten/palettex/internal/textutil"
)

// Style controls terminal painting for the table and cards writers.
type Style struct {
	Color   bool
	Profile termcolor.Profile
}

const columnGap = "  "

// WriteTable renders an aligned plain-text table. With color enabled, swatch
// cells are painted with their own color and level cells with the level's
// indicator; alignment is computed on visible width.
func WriteTable(w io.Writer, ds Dataset, sel FieldSelection, st Style) error {
	headers := Headers(sel.Fields)
	rows := make([][]string, 0, len(ds.Records)+1)
	rows = append(rows, headers)
	for _, rec := range ds.Records {
		rows = append(rows, RowValues(rec, sel.Fields))
	}
	widths := textutil.ColumnWidths(rows...)
	right := make([]bool, len(sel.Fields))
	for i, f := range sel.Fields {
		right[i] = f.Right
	}

	head := make([]string, len(headers))
	for i, h := range headers {
		head[i] = termcolor.Apply(termcolor.HeaderStyle(), h, st.Color)
	}
	if _, err := fmt.Fprintln(w, textutil.JoinColumns(head, widths, right, columnGap)); err != nil {
		return err
	}
	for i, rec := range ds.Records {
		cells := rows[i+1]
		for j, f := range sel.Fields {
			cells[j] = paintCell(rec, f.Key, cells[j], st)
		}
		if _, err := fmt.Fprintln(w, textutil.JoinColumns(cells, widths, right, columnGap)); err != nil {
			return err
		}
	}
	return nil
}

func paintCell(rec Record, key, value string, st Style) string {
	if !st.Color || value == "" {
		return value
	}
	if c, ok := rec.Colors[key]; ok {
		return termcolor.Apply(termcolor.SwatchStyle(c, st.Profile), value, true)
	}
	if level, ok := rec.Levels[key]; ok {
		return termcolor.Apply(termcolor.LevelStyle(level, st.Profile), value, true)
	}
	return value
}
