package termcolor

import (
	"testing"

	"github.com/phyten/palettex/internal/colorutil"
)

func TestHeaderStyle(t *testing.T) {
	s := HeaderStyle()
	if !s.Bold || !s.Underline || s.FG.IsSet() {
		t.Fatalf("header style should be bold+underline without color: %+v", s)
	}
}

func TestLevelStyleUsesIndicator(t *testing.T) {
	aaa := LevelStyle(colorutil.LevelAAA, ProfileTrueColor)
	if aaa.FG != RGB(colorutil.RGB{R: 0x10, G: 0xb9, B: 0x81}) || aaa.Bold {
		t.Fatalf("AAA truecolor should use #10b981: %+v", aaa)
	}
	fail := LevelStyle(colorutil.LevelFail, ProfileANSI256)
	if fail.FG != Indexed(rgbToANSI256(0xef, 0x44, 0x44)) || !fail.Bold {
		t.Fatalf("Fail 256 style mismatch: %+v", fail)
	}
	tests := []struct {
		level colorutil.Level
		want  int
	}{
		{colorutil.LevelAAA, 2},
		{colorutil.LevelAA, 2},
		{colorutil.LevelAALarge, 3},
		{colorutil.LevelFail, 1},
	}
	for _, tc := range tests {
		if s := LevelStyle(tc.level, ProfileBasic8); s.FG != Basic(tc.want) {
			t.Fatalf("%s basic color mismatch: %+v", tc.level, s)
		}
	}
}

func TestSwatchStyleTextContrast(t *testing.T) {
	for _, hex := range []string{"#ffffff", "#0f172a", "#f59e0b", "#4f46e5"} {
		c := colorutil.MustParseHex(hex)
		s := SwatchStyle(c, ProfileTrueColor)
		if s.BG != RGB(c) {
			t.Fatalf("%s: background mismatch %+v", hex, s.BG)
		}
		label := colorutil.AutoTextColor(c)
		if s.FG != RGB(label) {
			t.Fatalf("%s: label color mismatch %+v", hex, s.FG)
		}
		if r := colorutil.ContrastRatio(label, c); r < 4.5 {
			t.Fatalf("%s: swatch label contrast %.2f < 4.5", hex, r)
		}
	}
	if s := SwatchStyle(colorutil.MustParseHex("#ff0000"), ProfileBasic8); s.BG != Basic(1) {
		t.Fatalf("red should map to basic red background: %+v", s)
	}
	if s := SwatchStyle(colorutil.MustParseHex("#0f172a"), ProfileBasic8); s.FG != Basic(7) {
		t.Fatalf("dark swatch should carry white text: %+v", s)
	}
	s := SwatchStyle(colorutil.MustParseHex("#808080"), ProfileANSI256)
	if s.BG.kind != kindIndexed || s.BG.index < 232 {
		t.Fatalf("gray should map onto the grayscale ramp: %+v", s)
	}
}

func TestRGBToANSI256(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b uint8
		want    int
	}{
		{"black", 0, 0, 0, 16},
		{"white", 255, 255, 255, 231},
		{"red", 255, 0, 0, 196},
		{"blue", 0, 0, 255, 21},
	}
	for _, tc := range cases {
		if got := rgbToANSI256(tc.r, tc.g, tc.b); got != tc.want {
			t.Fatalf("%s should be %d, got %d", tc.name, tc.want, got)
		}
	}
}
