package palette

import "github.com/phyten/palettex/internal/colorutil"

// SimulatedTone holds a tone's colors as seen with a vision deficiency.
type SimulatedTone struct {
	Bg        string `json:"bg"`
	Card      string `json:"card"`
	Highlight string `json:"highlight"`
	Text      string `json:"text"`
	TextMuted string `json:"text_muted"`
}

type SimulatedAccent struct {
	Accent      string `json:"accent"`
	AccentLight string `json:"accent_light"`
	AccentDark  string `json:"accent_dark"`
	TextAccent  string `json:"text_accent"`
}

type Simulation struct {
	Deficiency string          `json:"deficiency"`
	Tone       SimulatedTone   `json:"palette"`
	Accent     SimulatedAccent `json:"accent"`
}

// SimulatePalette runs every color of tone and accent through the
// dichromacy simulator. Malformed colors are passed through unchanged.
func SimulatePalette(tone ToneTheme, accent AccentTheme, d colorutil.Deficiency) Simulation {
	sim := func(hex string) string { return colorutil.SimulateHex(hex, d) }
	return Simulation{
		Deficiency: d.String(),
		Tone: SimulatedTone{
			Bg:        sim(tone.Bg),
			Card:      sim(tone.Card),
			Highlight: sim(tone.Highlight),
			Text:      sim(tone.Text),
			TextMuted: sim(tone.TextMuted),
		},
		Accent: SimulatedAccent{
			Accent:      sim(accent.Accent),
			AccentLight: sim(accent.AccentLight),
			AccentDark:  sim(accent.AccentDark),
			TextAccent:  sim(accent.TextAccent),
		},
	}
}

// SimulatedSwatch is one swatch and its appearance per deficiency, keyed by
// the deficiency's short name.
type SimulatedSwatch struct {
	Name      string            `json:"name"`
	Hex       string            `json:"hex"`
	Simulated map[string]string `json:"simulated"`
}

func SimulateSwatches(swatches []Swatch, ds []colorutil.Deficiency) []SimulatedSwatch {
	out := make([]SimulatedSwatch, 0, len(swatches))
	for _, sw := range swatches {
		row := SimulatedSwatch{Name: sw.Name, Hex: sw.Color.Hex(), Simulated: make(map[string]string, len(ds))}
		for _, d := range ds {
			row.Simulated[d.String()] = colorutil.Simulate(sw.Color, d).Hex()
		}
		out = append(out, row)
	}
	return out
}
