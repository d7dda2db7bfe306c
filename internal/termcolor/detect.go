// Package termcolor decides whether and how richly palettex colors its
// terminal output, and builds the SGR styles for swatches and WCAG levels.
package termcolor

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

var modeNames = [...]string{ModeAuto: "auto", ModeAlways: "always", ModeNever: "never"}

func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return modeNames[ModeAuto]
	}
	return modeNames[m]
}

// ParseMode accepts auto, always and never; empty is auto.
func ParseMode(v string) (ColorMode, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return ModeAuto, nil
	}
	for m, name := range modeNames {
		if name == v {
			return ColorMode(m), nil
		}
	}
	return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
}

// Profile is how many colors a swatch can be drawn with.
type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

// EnvMap turns os.Environ() style entries into a lookup map.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		k, v, _ := strings.Cut(entry, "=")
		env[k] = v
	}
	return env
}

// envRules are checked in order; the first rule that matches decides.
// TERM=dumb and the opt-outs come before the force variables.
var envRules = []struct {
	key   string
	match func(string) bool
	mode  ColorMode
}{
	{"TERM", func(v string) bool { return strings.EqualFold(v, "dumb") }, ModeNever},
	{"NO_COLOR", func(v string) bool { return v != "" }, ModeNever},
	{"CLICOLOR", func(v string) bool { return v == "0" }, ModeNever},
	{"CLICOLOR_FORCE", forceColor, ModeAlways},
	{"FORCE_COLOR", forceColor, ModeAlways},
}

// DetectMode settles auto mode from the environment, then from whether
// stdout is a terminal.
func DetectMode(stdout *os.File, env map[string]string) ColorMode {
	if stdout == nil {
		return ModeNever
	}
	for _, r := range envRules {
		if r.match(strings.TrimSpace(env[r.key])) {
			return r.mode
		}
	}
	if isTerminal(stdout) {
		return ModeAlways
	}
	return ModeNever
}

// Enabled reports whether to emit colors. Auto only looks at stdout.
func Enabled(mode ColorMode, stdout *os.File) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	return isTerminal(stdout)
}

// DetectProfile reads COLORTERM and TERM. Anything that does not announce
// truecolor or 256 colors gets the basic profile.
func DetectProfile(env map[string]string) Profile {
	colorterm := strings.ToLower(env["COLORTERM"])
	for _, hint := range []string{"truecolor", "24bit", "24-bit"} {
		if strings.Contains(colorterm, hint) {
			return ProfileTrueColor
		}
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

// Resolve returns whether output is colored and at which depth.
func Resolve(mode ColorMode, stdout *os.File, env map[string]string) (bool, Profile) {
	if mode == ModeAuto {
		mode = DetectMode(stdout, env)
	}
	return Enabled(mode, stdout), DetectProfile(env)
}

// TermenvProfile is the profile handed to lipgloss renderers. Disabled
// output is Ascii so no escapes are written.
func TermenvProfile(p Profile, enabled bool) termenv.Profile {
	switch {
	case !enabled:
		return termenv.Ascii
	case p == ProfileTrueColor:
		return termenv.TrueColor
	case p == ProfileANSI256:
		return termenv.ANSI256
	}
	return termenv.ANSI
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

func forceColor(v string) bool {
	return v != "" && v != "0"
}
