package opts

import (
	"errors"
	"math"
	"net/url"
	"reflect"
	"testing"

	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/scale"
)

func TestParseBoolVariants(t *testing.T) {
	trueVals := []string{"1", "true", "TRUE", "yes", "On"}
	falseVals := []string{"0", "false", "FALSE", "no", "OFF"}

	for _, tc := range trueVals {
		t.Run("true/"+tc, func(t *testing.T) {
			got, err := ParseBool(tc, "flag")
			if err != nil {
				t.Fatalf("ParseBool(%q) error: %v", tc, err)
			}
			if !got {
				t.Fatalf("ParseBool(%q) = false, want true", tc)
			}
		})
	}

	for _, tc := range falseVals {
		t.Run("false/"+tc, func(t *testing.T) {
			got, err := ParseBool(tc, "flag")
			if err != nil {
				t.Fatalf("ParseBool(%q) error: %v", tc, err)
			}
			if got {
				t.Fatalf("ParseBool(%q) = true, want false", tc)
			}
		})
	}

	if _, err := ParseBool("maybe", "flag"); err == nil {
		t.Fatal("ParseBool should reject unknown values")
	}
}

func TestParseIntInRange(t *testing.T) {
	got, err := ParseIntInRange("42", "jobs", 1, 64)
	if err != nil {
		t.Fatalf("ParseIntInRange error: %v", err)
	}
	if got != 42 {
		t.Fatalf("ParseIntInRange = %d, want 42", got)
	}

	if _, err := ParseIntInRange("-1", "count", 0, math.MinInt); err == nil {
		t.Fatal("ParseIntInRange should reject negative values when min=0")
	}

	if _, err := ParseIntInRange("65", "jobs", 1, 64); err == nil {
		t.Fatal("ParseIntInRange should reject values above max")
	}
}

func TestParseFloatInRange(t *testing.T) {
	if v, err := ParseFloatInRange(" 4.5 ", "ratio", 1, 21); err != nil || v != 4.5 {
		t.Fatalf("ParseFloatInRange = %v, %v", v, err)
	}
	for _, bad := range []string{"", "abc", "NaN", "Inf", "0.5", "22"} {
		if _, err := ParseFloatInRange(bad, "ratio", 1, 21); err == nil {
			t.Fatalf("ParseFloatInRange(%q) should fail", bad)
		}
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	o := Defaults()
	o.Preset = " QUAD "
	o.Vision = []string{"Deuteranopia", "deutan", " protan "}
	if err := NormalizeAndValidate(&o); err != nil {
		t.Fatalf("NormalizeAndValidate error: %v", err)
	}
	if o.Preset != "quad" {
		t.Fatalf("Preset normalized incorrectly: %q", o.Preset)
	}
	if !reflect.DeepEqual(o.Vision, []string{"deutan", "protan"}) {
		t.Fatalf("Vision normalized incorrectly: %v", o.Vision)
	}

	cases := []func(*Options){
		func(o *Options) { o.Preset = "octet" },
		func(o *Options) { o.Jobs = 1024 },
		func(o *Options) { o.Count = 0 },
		func(o *Options) { o.Ratio = 30 },
		func(o *Options) { o.ScanFrom, o.ScanTo = 0.9, 0.1 },
		func(o *Options) { o.Step = 0 },
		func(o *Options) { o.Step = 1e-9 },
		func(o *Options) { o.Step = math.NaN() },
		func(o *Options) { o.Ratio = math.NaN() },
		func(o *Options) { o.MinSep = math.NaN() },
		func(o *Options) { o.ScanFrom = math.NaN() },
		func(o *Options) { o.ScanTo = math.Inf(1) },
		func(o *Options) { o.Dedup = math.NaN() },
		func(o *Options) { o.Vision = []string{"achromat"} },
	}
	for i, mutate := range cases {
		bad := Defaults()
		mutate(&bad)
		if err := NormalizeAndValidate(&bad); err == nil {
			t.Fatalf("case %d should fail validation", i)
		}
	}
}

func TestApplyWebQuery(t *testing.T) {
	def := Defaults()
	q := url.Values{}
	q.Set("ratio", "7")
	q.Set("preset", "quad")
	q.Set("large", "yes")
	q.Set("count", "5")
	q.Add("vision", "protan,tritan")
	q.Set("jobs", "4")

	got, err := ApplyWebQuery(def, q)
	if err != nil {
		t.Fatalf("ApplyWebQuery error: %v", err)
	}
	if got.Ratio != 7 || got.Preset != "quad" || got.Size != colorutil.SizeLarge || got.Count != 5 || got.Jobs != 4 {
		t.Fatalf("ApplyWebQuery mismatch: %+v", got)
	}
	if !reflect.DeepEqual(got.Vision, []string{"protan", "tritan"}) {
		t.Fatalf("Vision mismatch: %v", got.Vision)
	}
	if len(def.Vision) != 3 {
		t.Fatal("ApplyWebQuery must not mutate the defaults")
	}

	for key, val := range map[string]string{"count": "100", "ratio": "x", "large": "maybe", "size": "huge"} {
		q := url.Values{}
		q.Set(key, val)
		if _, err := ApplyWebQuery(def, q); err == nil {
			t.Fatalf("%s=%s should be rejected", key, val)
		}
	}
}

func TestApplyWebQueryTinyStepFailsValidation(t *testing.T) {
	q := url.Values{}
	q.Set("step", "0.000000001")
	got, err := ApplyWebQuery(Defaults(), q)
	if err != nil {
		t.Fatalf("ApplyWebQuery error: %v", err)
	}
	if err := NormalizeAndValidate(&got); err == nil {
		t.Fatal("step below the scan floor should be rejected")
	}

	q.Set("step", "0.001")
	got, err = ApplyWebQuery(Defaults(), q)
	if err != nil {
		t.Fatalf("ApplyWebQuery error: %v", err)
	}
	if err := NormalizeAndValidate(&got); err != nil {
		t.Fatalf("step at the floor should pass: %v", err)
	}
	if got.Step != scale.MinStep {
		t.Fatalf("Step = %v", got.Step)
	}
}

func TestShapeAppliesMinSep(t *testing.T) {
	o := Defaults()
	o.MinSep = 0.15
	shape, err := o.Shape()
	if err != nil {
		t.Fatal(err)
	}
	if shape.MinSep != 0.15 || shape.Name != "trio" {
		t.Fatalf("shape = %+v", shape)
	}
	o.MinSep = 0
	shape, _ = o.Shape()
	if shape.MinSep != 0.10 {
		t.Fatalf("preset MinSep should be kept, got %v", shape.MinSep)
	}
}

func TestNormalizeOutput(t *testing.T) {
	cases := map[string]string{"": "table", "JSON": "json", " md ": "markdown", "cards": "cards", "csv": "csv", "ndjson": "ndjson"}
	for in, want := range cases {
		got, err := NormalizeOutput(in)
		if err != nil || got != want {
			t.Fatalf("NormalizeOutput(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := NormalizeOutput("xml"); err == nil {
		t.Fatal("xml is not a supported output")
	}
}

func TestSplitMulti(t *testing.T) {
	vals := []string{"a,b", " c ", "", ",d"}
	got := SplitMulti(vals)
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("SplitMulti length mismatch: got=%d want=%d", len(got), len(want))
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("SplitMulti mismatch at %d: got=%q want=%q", i, got[i], v)
		}
	}
}

func TestParseRule(t *testing.T) {
	shape, _ := scale.PresetByName("trio")
	tests := []struct {
		raw  string
		want scale.Rule
		err  bool
	}{
		{raw: "dark:light.bg", want: scale.Rule{Slot: 2, Surface: "light.bg"}},
		{raw: "accent:dark.bg:3", want: scale.Rule{Slot: 1, Surface: "dark.bg", Ratio: 3}},
		{raw: "0:dark.card:7", want: scale.Rule{Slot: 0, Surface: "dark.card", Ratio: 7}},
		{raw: "mid:light.bg", err: true},
		{raw: "dark", err: true},
		{raw: "dark::4.5", err: true},
		{raw: "dark:light.bg:0.5", err: true},
		{raw: "dark:light.bg:4.5:x", err: true},
	}
	for _, tt := range tests {
		got, err := ParseRule(tt.raw, shape)
		if tt.err {
			if err == nil {
				t.Fatalf("ParseRule(%q) should fail", tt.raw)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseRule(%q) = %+v, %v", tt.raw, got, err)
		}
	}
	rules, err := ParseRules([]string{"light:dark.bg,dark:light.bg", "accent:light.bg:3"}, shape)
	if err != nil || len(rules) != 3 {
		t.Fatalf("ParseRules = %+v, %v", rules, err)
	}
}

func TestParseSurfaces(t *testing.T) {
	got, err := ParseSurfaces([]string{"light.bg=#FFFFFF,dark.bg=111827", "light.bg=#fafafa"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got["light.bg"].Hex() != "#fafafa" || got["dark.bg"].Hex() != "#111827" {
		t.Fatalf("ParseSurfaces = %v", got)
	}
	if _, err := ParseSurfaces([]string{"nohex"}); err == nil {
		t.Fatal("missing '=' should fail")
	}
	_, err = ParseSurfaces([]string{"bg=#12"})
	if !errors.Is(err, colorutil.ErrInvalidHex) {
		t.Fatalf("bad hex should wrap ErrInvalidHex, got %v", err)
	}
}

func TestParseColors(t *testing.T) {
	got, err := ParseColors([]string{"#ffffff, 000000"})
	if err != nil || len(got) != 2 || got[1].Hex() != "#000000" {
		t.Fatalf("ParseColors = %v, %v", got, err)
	}
	if _, err := ParseColors([]string{"#fff"}); !errors.Is(err, colorutil.ErrInvalidHex) {
		t.Fatalf("expected ErrInvalidHex, got %v", err)
	}
}
