package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/termcolor"
	"github.com/phyten/palettex/internal/textutil"
)

// WriteCards renders each record as a bordered card, one field per line,
// with swatch fields drawn as colored chips.
func WriteCards(w io.Writer, ds Dataset, sel FieldSelection, st Style) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termcolor.TermenvProfile(st.Profile, st.Color))

	card := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	label := r.NewStyle().Bold(true)

	keyWidth := 0
	for _, f := range sel.Fields {
		if n := textutil.VisibleWidth(f.Header); n > keyWidth {
			keyWidth = n
		}
	}

	for _, rec := range ds.Records {
		lines := make([]string, 0, len(sel.Fields))
		for _, f := range sel.Fields {
			value := rec.Values[f.Key]
			lines = append(lines, label.Render(textutil.PadRight(f.Header, keyWidth))+"  "+cardCell(r, rec, f.Key, value))
		}
		if _, err := fmt.Fprintln(w, card.Render(strings.Join(lines, "\n"))); err != nil {
			return err
		}
	}
	return nil
}

func cardCell(r *lipgloss.Renderer, rec Record, key, value string) string {
	if value == "" {
		return value
	}
	if c, ok := rec.Colors[key]; ok {
		fg := colorutil.AutoTextColor(c)
		return r.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color(fg.Hex())).
			Render(value)
	}
	if level, ok := rec.Levels[key]; ok {
		return r.NewStyle().
			Foreground(lipgloss.Color(level.Indicator())).
			Bold(level == colorutil.LevelFail).
			Render(value)
	}
	return value
}
