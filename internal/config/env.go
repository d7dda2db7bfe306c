package config

import (
	"errors"
	"math"
	"strings"

	"github.com/phyten/palettex/internal/opts"
)

// FromEnv reads the PALETTEX_* variables into a config layer. Range checks
// beyond basic parsing are left to opts.NormalizeAndValidate.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := opts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setFloat := func(target **float64, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseFloatInRange(raw, key, math.Inf(-1), math.Inf(1))
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setFloat(&cfg.Solver.Ratio, "PALETTEX_RATIO")
	setString(&cfg.Solver.Size, "PALETTEX_SIZE")
	setInt(&cfg.Solver.Count, "PALETTEX_COUNT", 0, math.MaxInt)
	setInt(&cfg.Solver.Jobs, "PALETTEX_JOBS", 0, math.MaxInt)
	setString(&cfg.Solver.Preset, "PALETTEX_PRESET")
	setFloat(&cfg.Solver.MinSep, "PALETTEX_MIN_SEP")
	setFloat(&cfg.Solver.Step, "PALETTEX_STEP")
	setFloat(&cfg.Solver.ScanFrom, "PALETTEX_SCAN_FROM")
	setFloat(&cfg.Solver.ScanTo, "PALETTEX_SCAN_TO")
	setFloat(&cfg.Solver.Dedup, "PALETTEX_DEDUP")
	setList(&cfg.Solver.Vision, "PALETTEX_VISION")
	setString(&cfg.Solver.Themes, "PALETTEX_THEMES")

	setString(&cfg.UI.Output, "PALETTEX_OUTPUT")
	setString(&cfg.UI.Color, "PALETTEX_COLOR")
	setString(&cfg.UI.Fields, "PALETTEX_FIELDS")
	setBool(&cfg.UI.Open, "PALETTEX_OPEN")
	setString(&cfg.UI.Scheme, "PALETTEX_SCHEME")
	setString(&cfg.UI.Addr, "PALETTEX_ADDR")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
