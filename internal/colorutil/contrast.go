package colorutil

import (
	"math"
	"strconv"
)

// DefaultRatio is the WCAG AA minimum for normal text.
const DefaultRatio = 4.5

// invalidRatio is what ContrastRatioHex reports for malformed input.
const invalidRatio = "—"

// Luminance is the WCAG 2.1 relative luminance of c.
func Luminance(c RGB) float64 {
	r, g, b := linearRGB(c)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func ContrastRatio(fg, bg RGB) float64 {
	return ratioFromLuminance(Luminance(fg), Luminance(bg))
}

func ratioFromLuminance(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// FormatRatio renders a ratio with two decimals, e.g. "4.54".
func FormatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', 2, 64)
}

// RoundRatio rounds to the two decimals FormatRatio prints.
func RoundRatio(ratio float64) float64 {
	return math.Round(ratio*100) / 100
}

// ContrastRatioHex is the string-level contrast check used by the CLI and
// HTTP layers. Malformed input yields "—" instead of an error.
func ContrastRatioHex(a, b string) string {
	ca, ok := ParseHex(a)
	if !ok {
		return invalidRatio
	}
	cb, ok := ParseHex(b)
	if !ok {
		return invalidRatio
	}
	return FormatRatio(ContrastRatio(ca, cb))
}

// AutoTextColor picks black or white, whichever reads better on bg.
func AutoTextColor(bg RGB) RGB {
	crBlack := ContrastRatio(black, bg)
	crWhite := ContrastRatio(white, bg)
	if crBlack >= DefaultRatio || crBlack >= crWhite {
		return black
	}
	return white
}

// EnsureContrast returns fg when it already meets minRatio against bg,
// otherwise the nearest lightness-adjusted fg, otherwise AutoTextColor(bg).
func EnsureContrast(fg, bg RGB, minRatio float64) RGB {
	if minRatio <= 0 {
		minRatio = DefaultRatio
	}
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}
	if adj, ok := SuggestAdjustment(fg, bg, minRatio); ok {
		return adj.Color
	}
	return AutoTextColor(bg)
}

// Pair is the WCAG verdict for one foreground/background pairing at both
// text sizes.
type Pair struct {
	Foreground string     `json:"foreground"`
	Background string     `json:"background"`
	Ratio      string     `json:"ratio"`
	Normal     WCAGResult `json:"normal"`
	Large      WCAGResult `json:"large"`
}

func EvaluatePair(fg, bg RGB) Pair {
	ratio := FormatRatio(ContrastRatio(fg, bg))
	return Pair{
		Foreground: fg.Hex(),
		Background: bg.Hex(),
		Ratio:      ratio,
		Normal:     LevelFromText(ratio, SizeNormal),
		Large:      LevelFromText(ratio, SizeLarge),
	}
}
