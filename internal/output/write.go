package output

import (
	"fmt"
	"io"
)

// Write renders ds in format ("table", "json", "ndjson", "csv", "markdown"
// or "cards"). fields narrows the columns of the tabular formats.
func Write(w io.Writer, format string, ds Dataset, fields string, st Style) error {
	sel, err := ResolveFields(fields, ds)
	if err != nil {
		return err
	}
	switch format {
	case "", "table":
		return WriteTable(w, ds, sel, st)
	case "json":
		return WriteJSON(w, ds)
	case "ndjson":
		return WriteNDJSON(w, ds)
	case "csv":
		return WriteCSV(w, ds, sel)
	case "markdown":
		return WriteMarkdownTable(w, ds, sel)
	case "cards":
		return WriteCards(w, ds, sel, st)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
