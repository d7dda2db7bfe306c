package colorutil

import (
	"math"
	"testing"
)

func TestSuggestAdjustmentDarkensNearMiss(t *testing.T) {
	fg := MustParseHex("#777777")
	if ContrastRatio(fg, white) >= 4.5 {
		t.Fatal("fixture should start just below 4.5")
	}
	adj, ok := SuggestAdjustment(fg, white, 4.5)
	if !ok {
		t.Fatal("expected an adjustment")
	}
	if adj.Ratio < 4.5 || ContrastRatio(adj.Color, white) < 4.5 {
		t.Fatalf("adjusted ratio %.2f below target", adj.Ratio)
	}
	if adj.DeltaLightness >= 0 || adj.DeltaLightness < -5 {
		t.Fatalf("expected a small darkening, got %.2f", adj.DeltaLightness)
	}
	if adj.Hex != adj.Color.Hex() {
		t.Fatalf("hex %s does not match color %s", adj.Hex, adj.Color)
	}
}

func TestSuggestAdjustmentAlreadyPasses(t *testing.T) {
	adj, ok := SuggestAdjustment(black, white, 4.5)
	if !ok || adj.Color != black || adj.DeltaLightness != 0 {
		t.Fatalf("passing input should be returned unchanged, got %+v ok=%v", adj, ok)
	}
}

func TestSuggestAdjustmentPicksCloserSide(t *testing.T) {
	gray := MustParseHex("#808080")
	adj, ok := SuggestAdjustment(gray, gray, 3)
	if !ok {
		t.Fatal("expected an adjustment")
	}
	if adj.DeltaLightness >= 0 {
		t.Fatalf("darkening is the shorter path here, got %+v", adj)
	}
	if adj.Ratio < 3 {
		t.Fatalf("ratio %.2f below target", adj.Ratio)
	}
}

func TestSuggestAdjustmentImpossible(t *testing.T) {
	mid := MustParseHex("#777777")
	if _, ok := SuggestAdjustment(mid, mid, 10); ok {
		t.Fatal("no lightness can reach 10:1 against mid gray")
	}
}

func TestSuggestAdjustmentKeepsHue(t *testing.T) {
	fg := MustParseHex("#ef4444")
	adj, ok := SuggestAdjustment(fg, white, 4.5)
	if !ok {
		t.Fatal("expected an adjustment")
	}
	h0, _, _ := toColorful(fg).Hsl()
	h1, _, _ := toColorful(adj.Color).Hsl()
	if math.Abs(h0-h1) > 3 {
		t.Fatalf("hue drifted from %.1f to %.1f", h0, h1)
	}
}

func TestAdjustReport(t *testing.T) {
	rep := Adjust(RGB{119, 119, 119}, RGB{255, 255, 255}, 0)
	if rep.Target != DefaultRatio || rep.Ratio != "4.48" {
		t.Fatalf("unexpected report header: %+v", rep)
	}
	if !rep.Found || rep.Adjustment == nil {
		t.Fatal("expected an adjustment for #777777 on white")
	}
	if rep.Adjustment.Ratio < DefaultRatio || rep.Adjustment.DeltaLightness >= 0 {
		t.Fatalf("unexpected adjustment: %+v", rep.Adjustment)
	}

	none := Adjust(RGB{128, 128, 128}, RGB{128, 128, 128}, 22)
	if none.Found || none.Adjustment != nil {
		t.Fatalf("ratio 22 is unreachable: %+v", none)
	}
}
