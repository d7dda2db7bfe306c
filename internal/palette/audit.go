package palette

import "github.com/phyten/palettex/internal/colorutil"

// AuditRow is one foreground/background pairing of a tone and accent.
type AuditRow struct {
	Foreground string               `json:"foreground"`
	Background string               `json:"background"`
	FgHex      string               `json:"fg"`
	BgHex      string               `json:"bg"`
	Ratio      string               `json:"ratio"`
	Result     colorutil.WCAGResult `json:"wcag"`
}

// Audit pairs every text color of the tone and every accent color with
// every tone surface, in that order. The text accent is checked against
// the accent it sits on.
func Audit(tone ToneTheme, accent AccentTheme, size colorutil.TextSize) []AuditRow {
	var fgs []Swatch
	fgs = append(fgs, tone.Texts()...)
	var textAccent *Swatch
	for _, sw := range accent.Swatches() {
		if sw.Name == "text_accent" {
			sw := sw
			textAccent = &sw
			continue
		}
		fgs = append(fgs, sw)
	}
	bgs := tone.Surfaces()

	rows := make([]AuditRow, 0, len(fgs)*len(bgs)+1)
	for _, fg := range fgs {
		for _, bg := range bgs {
			rows = append(rows, auditRow(fg, bg, size))
		}
	}
	if textAccent != nil {
		if base, ok := colorutil.ParseHex(accent.Accent); ok {
			rows = append(rows, auditRow(*textAccent, Swatch{Name: "accent", Hex: base.Hex(), Color: base}, size))
		}
	}
	return rows
}

func auditRow(fg, bg Swatch, size colorutil.TextSize) AuditRow {
	ratio := colorutil.FormatRatio(colorutil.ContrastRatio(fg.Color, bg.Color))
	return AuditRow{
		Foreground: fg.Name,
		Background: bg.Name,
		FgHex:      fg.Hex,
		BgHex:      bg.Hex,
		Ratio:      ratio,
		Result:     colorutil.LevelFromText(ratio, size),
	}
}

// Failures returns the rows that fail WCAG.
func Failures(rows []AuditRow) []AuditRow {
	var out []AuditRow
	for _, r := range rows {
		if !r.Result.Pass {
			out = append(out, r)
		}
	}
	return out
}
