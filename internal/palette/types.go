// Package palette models accent and tone themes and runs the color engine
// over them: simulation, contrast audits, distinguishability and accent
// scale correction.
package palette

import (
	"github.com/phyten/palettex/internal/colorutil"
)

// AccentTheme is one accent family. Display hides the theme from pickers
// when set to false; a missing value means shown.
//
// AccentLighter and AccentDarker are optional; when both are set the accent
// also forms a four-step scale.
type AccentTheme struct {
	Name          string `yaml:"name" toml:"name" json:"name"`
	Display       *bool  `yaml:"display" toml:"display" json:"display,omitempty"`
	Accent        string `yaml:"accent" toml:"accent" json:"accent"`
	AccentLighter string `yaml:"accent_lighter" toml:"accent_lighter" json:"accent_lighter,omitempty"`
	AccentLight   string `yaml:"accent_light" toml:"accent_light" json:"accent_light"`
	AccentDark    string `yaml:"accent_dark" toml:"accent_dark" json:"accent_dark"`
	AccentDarker  string `yaml:"accent_darker" toml:"accent_darker" json:"accent_darker,omitempty"`
	TextAccent    string `yaml:"text_accent" toml:"text_accent" json:"text_accent"`
}

// ToneTheme is one light or dark surface set.
type ToneTheme struct {
	Name      string `yaml:"name" toml:"name" json:"name"`
	Display   *bool  `yaml:"display" toml:"display" json:"display,omitempty"`
	Bg        string `yaml:"bg" toml:"bg" json:"bg"`
	Card      string `yaml:"card" toml:"card" json:"card"`
	Highlight string `yaml:"highlight" toml:"highlight" json:"highlight"`
	Text      string `yaml:"text" toml:"text" json:"text"`
	TextMuted string `yaml:"text_muted" toml:"text_muted" json:"text_muted"`
}

type ThemeConfig struct {
	Accent []AccentTheme `yaml:"accent" toml:"accent" json:"accent"`
	Light  []ToneTheme   `yaml:"light" toml:"light" json:"light"`
	Dark   []ToneTheme   `yaml:"dark" toml:"dark" json:"dark"`
}

// Swatch is a named color taken from a theme.
type Swatch struct {
	Name  string        `json:"name"`
	Hex   string        `json:"hex"`
	Color colorutil.RGB `json:"-"`
}

func (a AccentTheme) Shown() bool { return a.Display == nil || *a.Display }
func (t ToneTheme) Shown() bool { return t.Display == nil || *t.Display }

// Swatches lists the accent colors light to dark, then the text accent.
// Empty and malformed entries are skipped; run Validate to report them.
func (a AccentTheme) Swatches() []Swatch {
	return swatches(
		"accent_lighter", a.AccentLighter,
		"accent_light", a.AccentLight,
		"accent", a.Accent,
		"accent_dark", a.AccentDark,
		"accent_darker", a.AccentDarker,
		"text_accent", a.TextAccent,
	)
}

// Surfaces lists the background colors of the tone.
func (t ToneTheme) Surfaces() []Swatch {
	return swatches("bg", t.Bg, "card", t.Card, "highlight", t.Highlight)
}

// Texts lists the foreground colors of the tone.
func (t ToneTheme) Texts() []Swatch {
	return swatches("text", t.Text, "text_muted", t.TextMuted)
}

func swatches(pairs ...string) []Swatch {
	out := make([]Swatch, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		c, ok := colorutil.ParseHex(pairs[i+1])
		if !ok {
			continue
		}
		out = append(out, Swatch{Name: pairs[i], Hex: c.Hex(), Color: c})
	}
	return out
}

// Visible drops every theme whose display flag is false.
func (c ThemeConfig) Visible() ThemeConfig {
	out := ThemeConfig{}
	for _, a := range c.Accent {
		if a.Shown() {
			out.Accent = append(out.Accent, a)
		}
	}
	for _, t := range c.Light {
		if t.Shown() {
			out.Light = append(out.Light, t)
		}
	}
	for _, t := range c.Dark {
		if t.Shown() {
			out.Dark = append(out.Dark, t)
		}
	}
	return out
}

// FindAccent looks up an accent by name; an empty name picks the first one.
func (c ThemeConfig) FindAccent(name string) (AccentTheme, bool) {
	for _, a := range c.Accent {
		if name == "" || a.Name == name {
			return a, true
		}
	}
	return AccentTheme{}, false
}

// FindTone looks up a tone in the light or dark list; an empty name picks
// the first one.
func (c ThemeConfig) FindTone(scheme, name string) (ToneTheme, bool) {
	list := c.Light
	if scheme == "dark" {
		list = c.Dark
	}
	for _, t := range list {
		if name == "" || t.Name == name {
			return t, true
		}
	}
	return ToneTheme{}, false
}
