package termcolor

import "testing"

func TestDetectSchemeFromColorfgbg(t *testing.T) {
	if got := DetectScheme(map[string]string{"COLORFGBG": "7;0"}); got != SchemeDark {
		t.Fatalf("expected dark for bg=0, got %v", got)
	}
	if got := DetectScheme(map[string]string{"COLORFGBG": "15;7"}); got != SchemeLight {
		t.Fatalf("expected light for bg=7, got %v", got)
	}
	if got := DetectScheme(map[string]string{"COLORFGBG": "15;15"}); got != SchemeLight {
		t.Fatalf("expected light for bg=15, got %v", got)
	}
}

func TestDetectSchemeFallsBackToTermName(t *testing.T) {
	if got := DetectScheme(map[string]string{"TERM": "xterm-light"}); got != SchemeLight {
		t.Fatalf("expected light for TERM containing light, got %v", got)
	}
	if got := DetectScheme(nil); got != SchemeDark {
		t.Fatalf("nil env should default to dark, got %v", got)
	}
}

func TestResolveScheme(t *testing.T) {
	env := map[string]string{"COLORFGBG": "0;15"}
	if got, err := ResolveScheme("auto", env); err != nil || got != SchemeLight {
		t.Fatalf("auto should detect light, got %v (%v)", got, err)
	}
	if got, err := ResolveScheme("Dark", env); err != nil || got != SchemeDark {
		t.Fatalf("explicit dark should win, got %v (%v)", got, err)
	}
	if _, err := ResolveScheme("sepia", nil); err == nil {
		t.Fatal("expected error for unknown scheme")
	}
	if SchemeLight.Name() != "light" || SchemeUnknown.Name() != "dark" {
		t.Fatal("scheme names mismatch")
	}
}
