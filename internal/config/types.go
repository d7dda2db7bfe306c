package config

import (
	"strings"

	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/opts"
)

type SolverConfig struct {
	Ratio    *float64  `yaml:"ratio" toml:"ratio" json:"ratio"`
	Size     *string   `yaml:"size" toml:"size" json:"size"`
	Count    *int      `yaml:"count" toml:"count" json:"count"`
	Jobs     *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	Preset   *string   `yaml:"preset" toml:"preset" json:"preset"`
	MinSep   *float64  `yaml:"min_sep" toml:"min_sep" json:"min_sep"`
	Step     *float64  `yaml:"step" toml:"step" json:"step"`
	ScanFrom *float64  `yaml:"scan_from" toml:"scan_from" json:"scan_from"`
	ScanTo   *float64  `yaml:"scan_to" toml:"scan_to" json:"scan_to"`
	Dedup    *float64  `yaml:"dedup" toml:"dedup" json:"dedup"`
	Vision   *[]string `yaml:"vision" toml:"vision" json:"vision"`
	Themes   *string   `yaml:"themes" toml:"themes" json:"themes"`
}

type UIConfig struct {
	Output *string `yaml:"output" toml:"output" json:"output"`
	Color  *string `yaml:"color" toml:"color" json:"color"`
	Fields *string `yaml:"fields" toml:"fields" json:"fields"`
	Open   *bool   `yaml:"open" toml:"open" json:"open"`
	Scheme *string `yaml:"scheme" toml:"scheme" json:"scheme"`
	Addr   *string `yaml:"addr" toml:"addr" json:"addr"`
}

type Config struct {
	Solver SolverConfig `yaml:"solver" toml:"solver" json:"solver"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

// SolverSettings is the flattened solver layer. Size stays textual until
// ApplyToOptions so every layer reports the same parse error.
type SolverSettings struct {
	Ratio    float64
	Size     string
	Count    int
	Jobs     int
	Preset   string
	MinSep   float64
	Step     float64
	ScanFrom float64
	ScanTo   float64
	Dedup    float64
	Vision   []string
	Themes   string
}

type UISettings struct {
	Output string
	Color  string
	Fields string
	Open   bool
	Scheme string
	Addr   string
}

func SolverSettingsFromOptions(o opts.Options) SolverSettings {
	return SolverSettings{
		Ratio:    o.Ratio,
		Size:     o.Size.String(),
		Count:    o.Count,
		Jobs:     o.Jobs,
		Preset:   o.Preset,
		MinSep:   o.MinSep,
		Step:     o.Step,
		ScanFrom: o.ScanFrom,
		ScanTo:   o.ScanTo,
		Dedup:    o.Dedup,
		Vision:   cloneStrings(o.Vision),
	}
}

func (s SolverSettings) ApplyToOptions(o *opts.Options) error {
	if o == nil {
		return nil
	}
	size, err := colorutil.ParseTextSize(s.Size)
	if err != nil {
		return err
	}
	o.Ratio = s.Ratio
	o.Size = size
	o.Count = s.Count
	o.Jobs = s.Jobs
	if trimmed := strings.TrimSpace(s.Preset); trimmed != "" {
		o.Preset = trimmed
	}
	o.MinSep = s.MinSep
	o.Step = s.Step
	o.ScanFrom = s.ScanFrom
	o.ScanTo = s.ScanTo
	o.Dedup = s.Dedup
	o.Vision = cloneStrings(s.Vision)
	return nil
}

func DefaultUISettings() UISettings {
	return UISettings{
		Output: "table",
		Color:  "auto",
		Fields: "",
		Open:   false,
		Scheme: "auto",
		Addr:   "127.0.0.1:8080",
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
