package colorutil

import "math"

// sRGB transfer function constants. The decode threshold is the IEC
// 61966-2-1 value; WCAG 2.1 prints 0.03928, which selects the same branch
// for every 8-bit channel value.
const (
	decodeThreshold = 0.04045
	encodeThreshold = 0.0031308
)

// ToLinear converts an 8-bit gamma-encoded channel to linear light in [0,1].
func ToLinear(c uint8) float64 {
	return ToLinearUnit(float64(c) / 255.0)
}

// ToLinearUnit is ToLinear for a channel already scaled to [0,1].
func ToLinearUnit(v float64) float64 {
	if v <= decodeThreshold {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// FromLinear is the inverse of ToLinearUnit. Inputs outside [0,1] are not
// clamped; use EncodeLinear for channel output.
func FromLinear(x float64) float64 {
	if x <= encodeThreshold {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

// EncodeLinear clamps x to [0,1], gamma-encodes it and rounds to 8 bits.
func EncodeLinear(x float64) uint8 {
	x = clamp01(x)
	return uint8(math.Round(clamp01(FromLinear(x)) * 255))
}

func linearRGB(c RGB) (float64, float64, float64) {
	return ToLinear(c.R), ToLinear(c.G), ToLinear(c.B)
}

func fromLinearRGB(r, g, b float64) RGB {
	return RGB{R: EncodeLinear(r), G: EncodeLinear(g), B: EncodeLinear(b)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
