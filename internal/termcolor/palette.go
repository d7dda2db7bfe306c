package termcolor

import (
	"github.com/phyten/palettex/internal/colorutil"
)

var white = colorutil.RGB{R: 255, G: 255, B: 255}

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// LevelStyle colors a WCAG level label with its indicator color. The basic
// profile uses green, yellow and red instead; Fail is bold.
func LevelStyle(level colorutil.Level, profile Profile) Style {
	s := Style{Bold: level == colorutil.LevelFail}
	if profile == ProfileBasic8 {
		s.FG = Basic(levelBasicColor(level))
		return s
	}
	s.FG = ForProfile(colorutil.MustParseHex(level.Indicator()), profile)
	return s
}

// SwatchStyle paints c as a background under black or white text,
// whichever contrasts better.
func SwatchStyle(c colorutil.RGB, profile Profile) Style {
	fg := colorutil.AutoTextColor(c)
	if profile == ProfileBasic8 {
		label := Basic(0)
		if fg == white {
			label = Basic(7)
		}
		return Style{FG: label, BG: Basic(nearestBasic(c))}
	}
	return Style{FG: ForProfile(fg, profile), BG: ForProfile(c, profile)}
}

func levelBasicColor(level colorutil.Level) int {
	switch level {
	case colorutil.LevelAAA, colorutil.LevelAA:
		return 2
	case colorutil.LevelAALarge:
		return 3
	default:
		return 1
	}
}

// nearestBasic thresholds each channel at half intensity.
func nearestBasic(c colorutil.RGB) int {
	idx := 0
	for bit, v := range []uint8{c.R, c.G, c.B} {
		if v >= 128 {
			idx |= 1 << bit
		}
	}
	return idx
}

// rgbToANSI256 maps grays onto the 24-step ramp and everything else onto
// the 6x6x6 cube.
func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		switch {
		case r < 8:
			return 16
		case r > 248:
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	cube := func(v uint8) int { return int(v) * 5 / 255 }
	return 16 + 36*cube(r) + 6*cube(g) + cube(b)
}
