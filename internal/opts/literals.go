package opts

import (
	"fmt"
	"strings"

	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/scale"
)

// ParseSurface parses "name=#rrggbb".
func ParseSurface(raw string) (string, colorutil.RGB, error) {
	name, hex, ok := strings.Cut(strings.TrimSpace(raw), "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", colorutil.RGB{}, fmt.Errorf("invalid surface %q: want name=#rrggbb", raw)
	}
	c, parsed := colorutil.ParseHex(hex)
	if !parsed {
		return "", colorutil.RGB{}, fmt.Errorf("invalid surface %q: %w", raw, colorutil.ValidateHex(hex))
	}
	return name, c, nil
}

// ParseSurfaces parses every entry; later entries win on duplicate names.
func ParseSurfaces(vals []string) (map[string]colorutil.RGB, error) {
	out := make(map[string]colorutil.RGB)
	for _, raw := range SplitMulti(vals) {
		name, c, err := ParseSurface(raw)
		if err != nil {
			return nil, err
		}
		out[name] = c
	}
	return out, nil
}

// ParseRule parses "slot:surface[:ratio]". slot is a slot name of shape or
// a 0-based index. A missing ratio means the default ratio.
func ParseRule(raw string, shape scale.Shape) (scale.Rule, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return scale.Rule{}, fmt.Errorf("invalid rule %q: want slot:surface[:ratio]", raw)
	}
	slot, ok := shape.SlotIndex(parts[0])
	if !ok {
		return scale.Rule{}, fmt.Errorf("invalid rule %q: unknown slot %q (have %s)", raw, parts[0], strings.Join(shape.Slots, ", "))
	}
	surface := strings.TrimSpace(parts[1])
	if surface == "" {
		return scale.Rule{}, fmt.Errorf("invalid rule %q: empty surface", raw)
	}
	rule := scale.Rule{Slot: slot, Surface: surface}
	if len(parts) == 3 {
		ratio, err := ParseFloatInRange(parts[2], "rule ratio", 1, 21)
		if err != nil {
			return scale.Rule{}, fmt.Errorf("invalid rule %q: %w", raw, err)
		}
		rule.Ratio = ratio
	}
	return rule, nil
}

// ParseRules parses every rule in vals (repeated or comma separated).
func ParseRules(vals []string, shape scale.Shape) ([]scale.Rule, error) {
	var out []scale.Rule
	for _, raw := range SplitMulti(vals) {
		r, err := ParseRule(raw, shape)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ParseColors parses a list of hex colors.
func ParseColors(vals []string) ([]colorutil.RGB, error) {
	var out []colorutil.RGB
	for _, raw := range SplitMulti(vals) {
		c, ok := colorutil.ParseHex(raw)
		if !ok {
			return nil, colorutil.ValidateHex(raw)
		}
		out = append(out, c)
	}
	return out, nil
}
