package termcolor

import (
	"os"
	"testing"

	"github.com/muesli/termenv"
)

func pipeWriter(t *testing.T) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return w
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		input string
		want  ColorMode
		err   bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"always", ModeAlways, false},
		{" Never ", ModeNever, false},
		{"ALWAYS", ModeAlways, false},
		{"sometimes", ModeAuto, true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.input)
		if (err != nil) != tc.err {
			t.Fatalf("ParseMode(%q) error = %v, want error %v", tc.input, err, tc.err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q)=%v want %v", tc.input, got, tc.want)
		}
	}
	if ModeNever.String() != "never" || ColorMode(9).String() != "auto" {
		t.Fatalf("String mismatch: %q %q", ModeNever, ColorMode(9))
	}
}

func TestDetectModeEnvironmentOverrides(t *testing.T) {
	w := pipeWriter(t)
	cases := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"pipe without overrides", nil, ModeNever},
		{"NO_COLOR", map[string]string{"NO_COLOR": "1"}, ModeNever},
		{"CLICOLOR=0", map[string]string{"CLICOLOR": "0"}, ModeNever},
		{"CLICOLOR_FORCE", map[string]string{"CLICOLOR_FORCE": "1"}, ModeAlways},
		{"CLICOLOR_FORCE=0 is not a force", map[string]string{"CLICOLOR_FORCE": "0"}, ModeNever},
		{"FORCE_COLOR=2", map[string]string{"FORCE_COLOR": "2"}, ModeAlways},
		{"NO_COLOR beats CLICOLOR_FORCE", map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, ModeNever},
		{"NO_COLOR beats FORCE_COLOR", map[string]string{"NO_COLOR": "1", "FORCE_COLOR": "1"}, ModeNever},
		{"TERM=dumb", map[string]string{"TERM": "dumb"}, ModeNever},
		{"TERM=dumb beats FORCE_COLOR", map[string]string{"TERM": "DUMB", "FORCE_COLOR": "1"}, ModeNever},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectMode(w, tc.env); got != tc.want {
				t.Fatalf("DetectMode = %v, want %v", got, tc.want)
			}
		})
	}
	if got := DetectMode(nil, map[string]string{"FORCE_COLOR": "1"}); got != ModeNever {
		t.Fatalf("nil stdout should never be colored, got %v", got)
	}
}

func TestEnabled(t *testing.T) {
	w := pipeWriter(t)
	if !Enabled(ModeAlways, nil) {
		t.Fatal("ModeAlways should be enabled even with nil stdout")
	}
	if Enabled(ModeNever, w) {
		t.Fatal("ModeNever should be disabled")
	}
	if Enabled(ModeAuto, w) {
		t.Fatal("ModeAuto with non-tty stdout should be disabled")
	}
}

func TestDetectProfile(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want Profile
	}{
		{map[string]string{"COLORTERM": "truecolor"}, ProfileTrueColor},
		{map[string]string{"COLORTERM": "24bit", "TERM": "xterm-256color"}, ProfileTrueColor},
		{map[string]string{"TERM": "xterm-256color"}, ProfileANSI256},
		{map[string]string{"TERM": "xterm"}, ProfileBasic8},
		{nil, ProfileBasic8},
	}
	for _, tc := range cases {
		if got := DetectProfile(tc.env); got != tc.want {
			t.Fatalf("DetectProfile(%v) = %v, want %v", tc.env, got, tc.want)
		}
	}
}

func TestEnvMap(t *testing.T) {
	env := EnvMap([]string{"FOO=bar", "BAZ", "QUX=1=2", ""})
	if env["FOO"] != "bar" || env["QUX"] != "1=2" {
		t.Fatalf("unexpected values: %v", env)
	}
	if v, ok := env["BAZ"]; !ok || v != "" {
		t.Fatalf("expected BAZ present and empty, got %q (%v)", v, ok)
	}
	if len(env) != 3 {
		t.Fatalf("empty entries should be skipped: %v", env)
	}
}

func TestResolve(t *testing.T) {
	w := pipeWriter(t)
	enabled, profile := Resolve(ModeAuto, w, map[string]string{"FORCE_COLOR": "1", "COLORTERM": "truecolor"})
	if !enabled || profile != ProfileTrueColor {
		t.Fatalf("forced truecolor expected, got enabled=%v profile=%v", enabled, profile)
	}
	if enabled, _ = Resolve(ModeAuto, w, nil); enabled {
		t.Fatal("pipe without overrides should disable colors")
	}
	if enabled, _ = Resolve(ModeNever, w, map[string]string{"FORCE_COLOR": "1"}); enabled {
		t.Fatal("explicit never must win over FORCE_COLOR")
	}
}

func TestTermenvProfile(t *testing.T) {
	cases := []struct {
		profile Profile
		enabled bool
		want    termenv.Profile
	}{
		{ProfileTrueColor, true, termenv.TrueColor},
		{ProfileANSI256, true, termenv.ANSI256},
		{ProfileBasic8, true, termenv.ANSI},
		{ProfileTrueColor, false, termenv.Ascii},
	}
	for _, tc := range cases {
		if got := TermenvProfile(tc.profile, tc.enabled); got != tc.want {
			t.Fatalf("TermenvProfile(%v,%v)=%v want %v", tc.profile, tc.enabled, got, tc.want)
		}
	}
}
