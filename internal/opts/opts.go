// Package opts holds the option set shared by the CLI and the web API and
// the literal parsers both front ends use.
package opts

import (
	"fmt"
	"math"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/scale"
)

const (
	maxJobs  = 64
	maxCount = 20
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Options are the solver and presentation settings after all layers
// (defaults, config file, env, flags or query) have been applied.
type Options struct {
	Ratio    float64
	Size     colorutil.TextSize
	Count    int
	Jobs     int
	Preset   string
	MinSep   float64 // 0 keeps the preset's value
	Step     float64
	ScanFrom float64
	ScanTo   float64
	Dedup    float64
	Vision   []string
}

// Defaults returns the shared baseline options for both CLI and Web inputs.
func Defaults() Options {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return Options{
		Ratio:    colorutil.DefaultRatio,
		Size:     colorutil.SizeNormal,
		Count:    3,
		Jobs:     jobs,
		Preset:   scale.DefaultPreset,
		Step:     0.01,
		ScanFrom: 0.20,
		ScanTo:   0.80,
		Dedup:    0.05,
		Vision:   []string{"protan", "deutan", "tritan"},
	}
}

// ApplyWebQuery copies recognised values from the query string into the
// provided options. Validation happens separately via NormalizeAndValidate.
func ApplyWebQuery(def Options, q url.Values) (Options, error) {
	out := def
	out.Vision = append([]string(nil), def.Vision...)

	floats := []struct {
		key string
		dst *float64
	}{
		{"ratio", &out.Ratio},
		{"min_sep", &out.MinSep},
		{"step", &out.Step},
		{"scan_from", &out.ScanFrom},
		{"scan_to", &out.ScanTo},
		{"dedup", &out.Dedup},
	}
	for _, f := range floats {
		if raw, ok := lastLiteralValue(q[f.key]); ok {
			v, err := parseFloat(raw, f.key)
			if err != nil {
				return out, err
			}
			*f.dst = v
		}
	}
	if raw, ok := lastLiteralValue(q["size"]); ok {
		size, err := colorutil.ParseTextSize(raw)
		if err != nil {
			return out, err
		}
		out.Size = size
	}
	if raw, ok := lastLiteralValue(q["large"]); ok {
		v, err := ParseBool(raw, "large")
		if err != nil {
			return out, err
		}
		if v {
			out.Size = colorutil.SizeLarge
		} else {
			out.Size = colorutil.SizeNormal
		}
	}
	if raw, ok := lastLiteralValue(q["count"]); ok {
		n, err := ParseIntInRange(raw, "count", 1, maxCount)
		if err != nil {
			return out, err
		}
		out.Count = n
	}
	if raw, ok := lastLiteralValue(q["jobs"]); ok {
		n, err := ParseIntInRange(raw, "jobs", 1, maxJobs)
		if err != nil {
			return out, err
		}
		out.Jobs = n
	}
	if raw, ok := lastLiteralValue(q["preset"]); ok {
		out.Preset = raw
	}
	if raw := q["vision"]; len(raw) > 0 {
		out.Vision = SplitMulti(raw)
	}
	return out, nil
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *Options) error {
	if o.Ratio == 0 {
		o.Ratio = colorutil.DefaultRatio
	}
	if !(o.Ratio >= 1 && o.Ratio <= 21) {
		return fmt.Errorf("ratio must be between 1 and 21")
	}
	if o.Count < 1 || o.Count > maxCount {
		return fmt.Errorf("count must be between 1 and %d", maxCount)
	}
	if o.Jobs < 1 || o.Jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	}

	o.Preset = strings.ToLower(strings.TrimSpace(o.Preset))
	if o.Preset == "" {
		o.Preset = scale.DefaultPreset
	}
	if _, ok := scale.PresetByName(o.Preset); !ok {
		return fmt.Errorf("invalid --preset: %s (want one of %s)", o.Preset, strings.Join(scale.PresetNames(), ", "))
	}

	// 比較は NaN でも失敗する向きに書く。
	if !(o.MinSep >= 0 && o.MinSep <= 0.5) {
		return fmt.Errorf("min_sep must be between 0 and 0.5")
	}
	if !(o.Step >= scale.MinStep && o.Step <= 0.5) {
		return fmt.Errorf("step must be between %g and 0.5", scale.MinStep)
	}
	if !(o.ScanFrom >= 0 && o.ScanTo <= 1 && o.ScanFrom < o.ScanTo) {
		return fmt.Errorf("scan range must satisfy 0 <= scan_from < scan_to <= 1")
	}
	if !(o.Dedup >= 0 && o.Dedup <= 1) {
		return fmt.Errorf("dedup must be between 0 and 1")
	}

	vision := make([]string, 0, len(o.Vision))
	seen := map[string]bool{}
	for _, v := range trimSlice(o.Vision) {
		d, err := colorutil.ParseDeficiency(v)
		if err != nil {
			return fmt.Errorf("invalid --vision: %s", v)
		}
		if name := d.String(); !seen[name] {
			seen[name] = true
			vision = append(vision, name)
		}
	}
	o.Vision = vision
	return nil
}

// Shape resolves the preset and applies the MinSep override.
func (o Options) Shape() (scale.Shape, error) {
	shape, ok := scale.PresetByName(o.Preset)
	if !ok {
		return scale.Shape{}, fmt.Errorf("unknown preset: %s", o.Preset)
	}
	if o.MinSep > 0 {
		shape.MinSep = o.MinSep
	}
	return shape, nil
}

// SuggestRequest fills the scan settings of a Mode B request. The caller
// supplies the problem, shape and reference lightness.
func (o Options) SuggestRequest() scale.SuggestRequest {
	return scale.SuggestRequest{
		Count:    o.Count,
		Step:     o.Step,
		ScanFrom: o.ScanFrom,
		ScanTo:   o.ScanTo,
		DedupSep: o.Dedup,
		Jobs:     o.Jobs,
	}
}

// Deficiencies converts the normalized Vision list.
func (o Options) Deficiencies() []colorutil.Deficiency {
	out := make([]colorutil.Deficiency, 0, len(o.Vision))
	for _, v := range o.Vision {
		if d, err := colorutil.ParseDeficiency(v); err == nil {
			out = append(out, d)
		}
	}
	return out
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// ParseFloatInRange is ParseIntInRange for decimal values.
func ParseFloatInRange(raw, key string, min, max float64) (float64, error) {
	v, err := parseFloat(raw, key)
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s must be between %g and %g", key, min, max)
	}
	return v, nil
}

// NormalizeOutput validates and lower-cases the CLI/Web output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return "table", nil
	case "table", "json", "ndjson", "csv", "markdown", "cards":
		return v, nil
	case "md":
		return "markdown", nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated query parameters (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func parseFloat(raw, key string) (float64, error) {
	v := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number for %s: %q", key, raw)
	}
	return f, nil
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
