package colorutil

import "math"

const (
	gamutTolerance  = 0.001
	gamutIterations = 24
	achromaticLimit = 1e-6
)

// OKLCH is a color in polar OKLab. L is in [0,1], C is roughly [0,0.4],
// H is in degrees [0,360) and is 0 for achromatic colors.
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

func ToOKLCH(c RGB) OKLCH {
	r, g, b := linearRGB(c)
	l, a, bb := linearToOKLab(r, g, b)
	chroma := math.Hypot(a, bb)
	if chroma < achromaticLimit {
		return OKLCH{L: l}
	}
	hue := math.Atan2(bb, a) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	if hue >= 360 {
		hue -= 360
	}
	return OKLCH{L: l, C: chroma, H: hue}
}

// FromOKLCH converts o to sRGB. Out-of-gamut colors lose chroma only;
// lightness and hue are kept as requested.
func FromOKLCH(o OKLCH) RGB {
	l := clamp01(o.L)
	c := GamutChroma(l, o.C, o.H)
	r, g, b := oklchToLinear(l, c, o.H)
	return fromLinearRGB(r, g, b)
}

// GamutChroma returns the largest chroma in [0,c] for which (l,chroma,h)
// stays inside sRGB. l is expected in [0,1].
func GamutChroma(l, c, h float64) float64 {
	if c <= 0 {
		return 0
	}
	if inGamut(oklchToLinear(l, c, h)) {
		return c
	}
	lo, hi := 0.0, c
	for i := 0; i < gamutIterations; i++ {
		mid := (lo + hi) / 2
		if inGamut(oklchToLinear(l, mid, h)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// InGamut reports whether o can be shown in sRGB without chroma reduction.
func InGamut(o OKLCH) bool {
	return inGamut(oklchToLinear(o.L, o.C, o.H))
}

func HexToOKLCH(hex string) (OKLCH, bool) {
	c, ok := ParseHex(hex)
	if !ok {
		return OKLCH{}, false
	}
	return ToOKLCH(c), true
}

func OKLCHToHex(o OKLCH) string {
	return FromOKLCH(o).Hex()
}

func inGamut(r, g, b float64) bool {
	const lo, hi = -gamutTolerance, 1 + gamutTolerance
	return r >= lo && r <= hi && g >= lo && g <= hi && b >= lo && b <= hi
}

func oklchToLinear(l, c, h float64) (float64, float64, float64) {
	rad := h * math.Pi / 180
	return oklabToLinear(l, c*math.Cos(rad), c*math.Sin(rad))
}

func linearToOKLab(r, g, b float64) (float64, float64, float64) {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp, mp, sp := math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	return 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
}

func oklabToLinear(L, a, b float64) (float64, float64, float64) {
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	l, m, s := lp*lp*lp, mp*mp*mp, sp*sp*sp

	return 4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		-1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		-0.0041960863*l - 0.7034186147*m + 1.7076147010*s
}
