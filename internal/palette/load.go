package palette

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phyten/palettex/internal/colorutil"
)

//go:embed themes/default.yaml
var defaultThemes []byte

// Default returns the built-in theme set.
func Default() ThemeConfig {
	cfg, err := Decode(defaultThemes, "yaml")
	if err != nil {
		panic(fmt.Sprintf("palette: built-in themes: %v", err))
	}
	return cfg
}

// Load reads a theme file; the format follows the extension
// (.yaml/.yml, .toml, .json).
func Load(path string) (ThemeConfig, error) {
	path = strings.TrimSpace(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return ThemeConfig{}, err
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := Decode(data, ext)
	if err != nil {
		return ThemeConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses and validates theme data. Unknown keys are errors.
func Decode(data []byte, format string) (ThemeConfig, error) {
	var cfg ThemeConfig
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse yaml: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse toml: %w", err)
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse json: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported theme format: %s", format)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every malformed color, missing name and duplicate name.
func (c ThemeConfig) Validate() error {
	var errs []error
	seen := map[string]bool{}
	for i, a := range c.Accent {
		errs = append(errs, checkName("accent", i, a.Name, seen)...)
		errs = append(errs, checkHex("accent", a.Name, "accent", a.Accent, true))
		errs = append(errs, checkHex("accent", a.Name, "accent_light", a.AccentLight, true))
		errs = append(errs, checkHex("accent", a.Name, "accent_dark", a.AccentDark, true))
		errs = append(errs, checkHex("accent", a.Name, "text_accent", a.TextAccent, true))
		errs = append(errs, checkHex("accent", a.Name, "accent_lighter", a.AccentLighter, false))
		errs = append(errs, checkHex("accent", a.Name, "accent_darker", a.AccentDarker, false))
		if (a.AccentLighter == "") != (a.AccentDarker == "") {
			errs = append(errs, fmt.Errorf("accent %s: accent_lighter and accent_darker must be set together", a.Name))
		}
	}
	for _, scheme := range []struct {
		name  string
		tones []ToneTheme
	}{{"light", c.Light}, {"dark", c.Dark}} {
		for i, t := range scheme.tones {
			errs = append(errs, checkName(scheme.name, i, t.Name, seen)...)
			errs = append(errs, checkHex(scheme.name, t.Name, "bg", t.Bg, true))
			errs = append(errs, checkHex(scheme.name, t.Name, "card", t.Card, true))
			errs = append(errs, checkHex(scheme.name, t.Name, "highlight", t.Highlight, true))
			errs = append(errs, checkHex(scheme.name, t.Name, "text", t.Text, true))
			errs = append(errs, checkHex(scheme.name, t.Name, "text_muted", t.TextMuted, true))
		}
	}
	return errors.Join(errs...)
}

func checkName(section string, idx int, name string, seen map[string]bool) []error {
	if strings.TrimSpace(name) == "" {
		return []error{fmt.Errorf("%s[%d]: name is required", section, idx)}
	}
	key := section + "/" + name
	if seen[key] {
		return []error{fmt.Errorf("%s %s: duplicate name", section, name)}
	}
	seen[key] = true
	return nil
}

func checkHex(section, name, field, value string, required bool) error {
	if value == "" && !required {
		return nil
	}
	if err := colorutil.ValidateHex(value); err != nil {
		return fmt.Errorf("%s %s: %s: %w", section, name, field, err)
	}
	return nil
}
