package palette

import (
	"fmt"

	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/scale"
)

// largeTextRatio is the WCAG minimum for large text and UI components.
const largeTextRatio = 3.0

// Surfaces names every background of the two tones as "<scheme>.<field>",
// e.g. "light.bg" or "dark.card".
func Surfaces(light, dark ToneTheme) map[string]colorutil.RGB {
	out := make(map[string]colorutil.RGB, 6)
	for _, sw := range light.Surfaces() {
		out["light."+sw.Name] = sw.Color
	}
	for _, sw := range dark.Surfaces() {
		out["dark."+sw.Name] = sw.Color
	}
	return out
}

// AccentRules builds the cross-tone rules for an accent scale of the given
// shape. The lighter half is read on the dark tone and the darker half on
// the light tone. Outermost slots must reach ratio on bg and card; inner
// slots need the large-text minimum on bg. A middle slot of an odd scale
// must reach the large-text minimum on both backgrounds.
func AccentRules(shape scale.Shape, ratio float64) []scale.Rule {
	n := len(shape.Slots)
	var rules []scale.Rule
	for i := 0; i < n; i++ {
		outer := i == 0 || i == n-1
		var scheme string
		switch {
		case n%2 == 1 && i == n/2:
			rules = append(rules,
				scale.Rule{Slot: i, Surface: "light.bg", Ratio: largeTextRatio},
				scale.Rule{Slot: i, Surface: "dark.bg", Ratio: largeTextRatio},
			)
			continue
		case i < n/2:
			scheme = "dark"
		default:
			scheme = "light"
		}
		if outer {
			rules = append(rules,
				scale.Rule{Slot: i, Surface: scheme + ".bg", Ratio: ratio},
				scale.Rule{Slot: i, Surface: scheme + ".card", Ratio: ratio},
			)
			continue
		}
		rules = append(rules, scale.Rule{Slot: i, Surface: scheme + ".bg", Ratio: largeTextRatio})
	}
	return rules
}

// AccentColors returns the accent's existing colors in the slot order of
// shape: trio uses light/accent/dark, quad lighter/light/dark/darker.
func AccentColors(accent AccentTheme, shape scale.Shape) ([]colorutil.RGB, error) {
	var fields []string
	switch len(shape.Slots) {
	case 3:
		fields = []string{accent.AccentLight, accent.Accent, accent.AccentDark}
	case 4:
		if accent.AccentLighter == "" || accent.AccentDarker == "" {
			return nil, fmt.Errorf("accent %s has no accent_lighter/accent_darker for a %d-step scale", accent.Name, len(shape.Slots))
		}
		fields = []string{accent.AccentLighter, accent.AccentLight, accent.AccentDark, accent.AccentDarker}
	default:
		return nil, fmt.Errorf("unsupported scale size: %d", len(shape.Slots))
	}
	out := make([]colorutil.RGB, len(fields))
	for i, f := range fields {
		c, ok := colorutil.ParseHex(f)
		if !ok {
			return nil, fmt.Errorf("accent %s: %w: got %q", accent.Name, colorutil.ErrInvalidHex, f)
		}
		out[i] = c
	}
	return out, nil
}

// AccentProblem derives the shared chroma/hue and the reference lightness
// from the accent's main color.
func AccentProblem(accent AccentTheme, light, dark ToneTheme, rules []scale.Rule, ratio float64) (scale.Problem, float64, error) {
	base, ok := colorutil.ParseHex(accent.Accent)
	if !ok {
		return scale.Problem{}, 0, fmt.Errorf("accent %s: %w: got %q", accent.Name, colorutil.ErrInvalidHex, accent.Accent)
	}
	c, h, l := scale.Reference(base)
	return scale.Problem{
		Chroma:   c,
		Hue:      h,
		Surfaces: Surfaces(light, dark),
		Rules:    rules,
		Ratio:    ratio,
	}, l, nil
}

// CorrectAccent repairs the accent's existing scale against both tones.
func CorrectAccent(accent AccentTheme, light, dark ToneTheme, shape scale.Shape, ratio float64) (scale.Suggestion, error) {
	colors, err := AccentColors(accent, shape)
	if err != nil {
		return scale.Suggestion{}, err
	}
	prob, _, err := AccentProblem(accent, light, dark, AccentRules(shape, ratio), ratio)
	if err != nil {
		return scale.Suggestion{}, err
	}
	return scale.Correct(scale.CorrectRequest{Problem: prob, Shape: shape, Colors: colors}), nil
}

// SuggestAccent generates fresh scales around the accent's hue. req carries
// the scan settings; its Problem, Shape and Reference are filled in here.
func SuggestAccent(accent AccentTheme, light, dark ToneTheme, shape scale.Shape, ratio float64, req scale.SuggestRequest) ([]scale.Suggestion, error) {
	prob, ref, err := AccentProblem(accent, light, dark, AccentRules(shape, ratio), ratio)
	if err != nil {
		return nil, err
	}
	req.Problem = prob
	req.Shape = shape
	req.Reference = ref
	return scale.Suggest(req), nil
}
