package termcolor

import (
	"strconv"
	"strings"

	"github.com/phyten/palettex/internal/colorutil"
)

type colorKind uint8

const (
	kindNone colorKind = iota
	kindBasic
	kindIndexed
	kindRGB
)

// Color is one SGR color. The zero value leaves the terminal default.
type Color struct {
	kind  colorKind
	index int
	rgb   colorutil.RGB
}

// Basic is one of the 8 ANSI colors (0 black .. 7 white).
func Basic(i int) Color { return Color{kind: kindBasic, index: i} }

// Indexed is an entry of the 256-color palette.
func Indexed(i int) Color { return Color{kind: kindIndexed, index: i} }

// RGB is a 24-bit color.
func RGB(c colorutil.RGB) Color { return Color{kind: kindRGB, rgb: c} }

// ForProfile reduces c to what the profile can show.
func ForProfile(c colorutil.RGB, p Profile) Color {
	switch p {
	case ProfileTrueColor:
		return RGB(c)
	case ProfileANSI256:
		return Indexed(rgbToANSI256(c.R, c.G, c.B))
	default:
		return Basic(nearestBasic(c))
	}
}

func (c Color) IsSet() bool { return c.kind != kindNone }

// sgr renders c for the foreground (base 30) or background (base 40).
func (c Color) sgr(base int) string {
	switch c.kind {
	case kindBasic:
		return strconv.Itoa(base + c.index)
	case kindIndexed:
		return strconv.Itoa(base+8) + ";5;" + strconv.Itoa(c.index)
	case kindRGB:
		return strconv.Itoa(base+8) + ";2;" + strconv.Itoa(int(c.rgb.R)) + ";" +
			strconv.Itoa(int(c.rgb.G)) + ";" + strconv.Itoa(int(c.rgb.B))
	}
	return ""
}

type Style struct {
	Bold      bool
	Dim       bool
	Underline bool
	FG        Color
	BG        Color
}

// Apply wraps text in the style's SGR sequence and a reset.
func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := s.codes()
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func (s Style) codes() []string {
	var codes []string
	for _, attr := range []struct {
		on   bool
		code string
	}{{s.Bold, "1"}, {s.Dim, "2"}, {s.Underline, "4"}} {
		if attr.on {
			codes = append(codes, attr.code)
		}
	}
	if s.FG.IsSet() {
		codes = append(codes, s.FG.sgr(30))
	}
	if s.BG.IsSet() {
		codes = append(codes, s.BG.sgr(40))
	}
	return codes
}
