package colorutil

import (
	"math"
	"testing"
)

func TestContrastRatio(t *testing.T) {
	cases := []struct {
		name     string
		fg, bg   RGB
		minRatio float64
	}{
		{"blackOnWhite", RGB{0, 0, 0}, RGB{255, 255, 255}, 4.5},
		{"whiteOnBlack", RGB{255, 255, 255}, RGB{0, 0, 0}, 4.5},
		{"darkRedOnWhite", RGB{185, 28, 28}, RGB{255, 255, 255}, 4.5},
		{"amberOnBlack", RGB{245, 158, 11}, RGB{17, 24, 39}, 4.5},
	}
	for _, tc := range cases {
		ratio := ContrastRatio(tc.fg, tc.bg)
		if ratio < tc.minRatio {
			t.Fatalf("%s contrast ratio %.2f < %.2f", tc.name, ratio, tc.minRatio)
		}
	}
}

func TestContrastRatioExtremes(t *testing.T) {
	if got := ContrastRatioHex("#ffffff", "#000000"); got != "21.00" {
		t.Fatalf("white/black ratio = %s, want 21.00", got)
	}
	if got := ContrastRatioHex("#123456", "#123456"); got != "1.00" {
		t.Fatalf("identical colors ratio = %s, want 1.00", got)
	}
	if got := Luminance(white); math.Abs(got-1) > 1e-9 {
		t.Fatalf("Luminance(white) = %v, want 1", got)
	}
	if got := Luminance(black); got != 0 {
		t.Fatalf("Luminance(black) = %v, want 0", got)
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	samples := []RGB{{0, 0, 0}, {255, 255, 255}, {119, 119, 119}, {61, 138, 69}, {239, 68, 68}, {16, 185, 129}, {3, 7, 200}}
	for _, a := range samples {
		for _, b := range samples {
			if ContrastRatio(a, b) != ContrastRatio(b, a) {
				t.Fatalf("ratio(%s,%s) != ratio(%s,%s)", a, b, b, a)
			}
			r := ContrastRatio(a, b)
			if r < 1 || r > 21+1e-9 {
				t.Fatalf("ratio(%s,%s) = %v out of [1,21]", a, b, r)
			}
		}
	}
}

func TestContrastRatioHexInvalid(t *testing.T) {
	if got := ContrastRatioHex("#ffffff", "nope"); got != "—" {
		t.Fatalf("invalid input should yield an em dash, got %q", got)
	}
}

func TestAutoTextColor(t *testing.T) {
	cases := []struct {
		name string
		bg   RGB
		want RGB
	}{
		{"lightBackground", RGB{255, 247, 237}, black},
		{"darkBackground", RGB{15, 23, 42}, white},
		{"medium", RGB{120, 113, 108}, white},
	}
	for _, tc := range cases {
		got := AutoTextColor(tc.bg)
		if got != tc.want {
			t.Fatalf("%s AutoTextColor=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestEnsureContrastAdjustsWhenNeeded(t *testing.T) {
	bg := RGB{255, 255, 255}
	fg := RGB{255, 0, 0}
	ensured := EnsureContrast(fg, bg, 4.5)
	if ContrastRatio(ensured, bg) < 4.5 {
		t.Fatalf("expected EnsureContrast to meet ratio, got %.2f", ContrastRatio(ensured, bg))
	}
	if ensured == black {
		t.Fatal("expected a darkened red rather than the black fallback")
	}
	if EnsureContrast(black, bg, 0) != black {
		t.Fatal("passing colors must be returned unchanged")
	}
}

func TestToLinearThresholdsAgreeOn8Bit(t *testing.T) {
	legacy := func(c uint8) float64 {
		v := float64(c) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	for c := 0; c < 256; c++ {
		if got, want := ToLinear(uint8(c)), legacy(uint8(c)); got != want {
			t.Fatalf("ToLinear(%d) = %v, 0.03928 variant = %v", c, got, want)
		}
	}
}

func TestFromLinearInvertsToLinear(t *testing.T) {
	for c := 0; c < 256; c++ {
		if got := EncodeLinear(ToLinear(uint8(c))); got != uint8(c) {
			t.Fatalf("EncodeLinear(ToLinear(%d)) = %d", c, got)
		}
	}
	if EncodeLinear(-0.5) != 0 || EncodeLinear(1.7) != 255 {
		t.Fatal("EncodeLinear should clamp out-of-range input")
	}
}

func TestEvaluatePair(t *testing.T) {
	p := EvaluatePair(RGB{119, 119, 119}, white)
	if p.Ratio != "4.48" {
		t.Fatalf("ratio = %s, want 4.48", p.Ratio)
	}
	if p.Normal.Level != LevelAALarge || !p.Normal.Pass {
		t.Fatalf("normal verdict = %+v", p.Normal)
	}
	if p.Large.Level != LevelAA {
		t.Fatalf("large verdict = %+v", p.Large)
	}
	if p.Foreground != "#777777" || p.Background != "#ffffff" {
		t.Fatalf("hex mismatch: %+v", p)
	}
}
