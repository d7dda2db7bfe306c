package config

import (
	"fmt"
	"strings"

	"github.com/phyten/palettex/internal/opts"
)

func CanonicalizeColor(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color: %s", raw)
	}
}

// CanonicalizeScheme picks which tone family previews default to.
func CanonicalizeScheme(raw string) (string, error) {
	scheme := strings.ToLower(strings.TrimSpace(raw))
	switch scheme {
	case "", "auto":
		return "auto", nil
	case "light", "dark":
		return scheme, nil
	default:
		return "", fmt.Errorf("invalid scheme: %s", raw)
	}
}

func NormalizeUI(values UISettings) (UISettings, error) {
	var err error
	values.Fields = strings.TrimSpace(values.Fields)
	values.Addr = strings.TrimSpace(values.Addr)
	if values.Addr == "" {
		values.Addr = DefaultUISettings().Addr
	}

	values.Output, err = opts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	values.Color, err = CanonicalizeColor(values.Color)
	if err != nil {
		return values, err
	}
	values.Scheme, err = CanonicalizeScheme(values.Scheme)
	if err != nil {
		return values, err
	}
	return values, nil
}
