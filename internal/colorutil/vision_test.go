package colorutil

import "testing"

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestSimulateKeepsNeutrals(t *testing.T) {
	neutrals := []RGB{black, white, {128, 128, 128}, {40, 40, 40}}
	for _, d := range Deficiencies() {
		for _, c := range neutrals {
			got := Simulate(c, d)
			if absDiff(got.R, c.R) > 1 || absDiff(got.G, c.G) > 1 || absDiff(got.B, c.B) > 1 {
				t.Fatalf("%s: neutral %s became %s", d, c, got)
			}
		}
	}
}

func TestSimulateProtanRed(t *testing.T) {
	got := Simulate(RGB{255, 0, 0}, Protan)
	want := RGB{109, 95, 0}
	if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 || got.B != want.B {
		t.Fatalf("protan red = %s, want about %s", got, want)
	}
}

func TestSimulateDiffersPerDeficiency(t *testing.T) {
	green := RGB{16, 185, 129}
	seen := map[RGB]Deficiency{}
	for _, d := range Deficiencies() {
		got := Simulate(green, d)
		if prev, dup := seen[got]; dup {
			t.Fatalf("%s and %s produced the same color %s", prev, d, got)
		}
		seen[got] = d
	}
}

func TestSimulateUnknownDeficiency(t *testing.T) {
	c := RGB{1, 2, 3}
	if got := Simulate(c, Deficiency(42)); got != c {
		t.Fatalf("unknown deficiency should be a no-op, got %s", got)
	}
	if got := SimulateHex("bogus", Deutan); got != "bogus" {
		t.Fatalf("malformed hex should pass through, got %q", got)
	}
}

func TestParseDeficiency(t *testing.T) {
	cases := map[string]Deficiency{
		"protan":       Protan,
		"Deuteranopia": Deutan,
		" tritan ":     Tritan,
	}
	for in, want := range cases {
		got, err := ParseDeficiency(in)
		if err != nil || got != want {
			t.Fatalf("ParseDeficiency(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDeficiency("achromat"); err == nil {
		t.Fatal("expected error for unsupported deficiency")
	}
}
