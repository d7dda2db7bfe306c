package colorutil

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const adjustIterations = 40

// Adjustment is a lightness-shifted foreground that meets a contrast target.
// DeltaLightness is the signed HSL lightness change in percentage points.
type Adjustment struct {
	Color          RGB     `json:"-"`
	Hex            string  `json:"hex"`
	Ratio          float64 `json:"ratio"`
	DeltaLightness float64 `json:"delta_lightness"`
}

// SuggestAdjustment finds the smallest HSL lightness change to fg that
// reaches target against bg, keeping fg's hue and saturation. It searches
// the darker side [0,L] and the lighter side [L,100] independently and
// returns the closer hit. ok is false when neither side reaches target.
func SuggestAdjustment(fg, bg RGB, target float64) (Adjustment, bool) {
	if target <= 0 {
		target = DefaultRatio
	}
	if r := ContrastRatio(fg, bg); r >= target {
		return Adjustment{Color: fg, Hex: fg.Hex(), Ratio: r}, true
	}
	h, s, l := toColorful(fg).Hsl()
	l0 := l * 100

	meets := func(lightness float64) bool {
		return ContrastRatio(fromHSL(h, s, lightness), bg) >= target
	}

	var best Adjustment
	found := false
	for _, far := range []float64{0, 100} {
		lv, ok := bisectLightness(l0, far, meets)
		if !ok {
			continue
		}
		c := fromHSL(h, s, lv)
		cand := Adjustment{Color: c, Hex: c.Hex(), Ratio: ContrastRatio(c, bg), DeltaLightness: lv - l0}
		if !found || math.Abs(cand.DeltaLightness) < math.Abs(best.DeltaLightness) {
			best = cand
			found = true
		}
	}
	return best, found
}

// bisectLightness walks from the failing start towards far and returns the
// passing lightness closest to start.
func bisectLightness(start, far float64, meets func(float64) bool) (float64, bool) {
	if start == far || !meets(far) {
		return 0, false
	}
	good, bad := far, start
	for i := 0; i < adjustIterations; i++ {
		mid := (good + bad) / 2
		if meets(mid) {
			good = mid
		} else {
			bad = mid
		}
	}
	return good, true
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromHSL(h, s, lightness float64) RGB {
	r, g, b := colorful.Hsl(h, s, lightness/100).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// AdjustReport wraps SuggestAdjustment with its inputs for the CLI and API.
type AdjustReport struct {
	Foreground string      `json:"foreground"`
	Background string      `json:"background"`
	Target     float64     `json:"target"`
	Ratio      string      `json:"ratio"`
	Found      bool        `json:"found"`
	Adjustment *Adjustment `json:"adjustment,omitempty"`
}

func Adjust(fg, bg RGB, target float64) AdjustReport {
	if target <= 0 {
		target = DefaultRatio
	}
	rep := AdjustReport{
		Foreground: fg.Hex(),
		Background: bg.Hex(),
		Target:     target,
		Ratio:      FormatRatio(ContrastRatio(fg, bg)),
	}
	if adj, ok := SuggestAdjustment(fg, bg, target); ok {
		adj.Ratio = RoundRatio(adj.Ratio)
		adj.DeltaLightness = math.Round(adj.DeltaLightness*100) / 100
		rep.Found = true
		rep.Adjustment = &adj
	}
	return rep
}
