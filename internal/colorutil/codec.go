// Package colorutil holds the color math shared by every palettex command:
// hex parsing, sRGB transfer functions, WCAG contrast, dichromacy simulation,
// OKLCH conversion and single-color lightness adjustment.
package colorutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ValidateHex for anything other than #rrggbb.
var ErrInvalidHex = errors.New("invalid hex color, expected #rrggbb")

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// ParseHex accepts six hex digits with an optional leading '#'.
// Case is ignored; surrounding whitespace is trimmed.
func ParseHex(text string) (RGB, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(text), "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return RGB{}, false
		}
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, true
}

// MustParseHex is ParseHex for literals; it panics on malformed input.
func MustParseHex(text string) RGB {
	c, ok := ParseHex(text)
	if !ok {
		panic(fmt.Sprintf("colorutil: bad hex literal %q", text))
	}
	return c
}

func ValidateHex(text string) error {
	if _, ok := ParseHex(text); !ok {
		return fmt.Errorf("%w: got %q", ErrInvalidHex, text)
	}
	return nil
}

// Hex returns the canonical lowercase #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// NormalizeHex returns the canonical form of text, or "" when it does not parse.
func NormalizeHex(text string) string {
	c, ok := ParseHex(text)
	if !ok {
		return ""
	}
	return c.Hex()
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
