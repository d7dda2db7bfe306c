package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phyten/palettex/internal/opts"
)

var solverKeyMap = map[string]string{
	"ratio":          "ratio",
	"target":         "ratio",
	"contrast":       "ratio",
	"size":           "size",
	"text_size":      "size",
	"count":          "count",
	"jobs":           "jobs",
	"preset":         "preset",
	"shape":          "preset",
	"min_sep":        "min_sep",
	"min_separation": "min_sep",
	"step":           "step",
	"scan_from":      "scan_from",
	"scan_to":        "scan_to",
	"dedup":          "dedup",
	"dedup_sep":      "dedup",
	"vision":         "vision",
	"deficiencies":   "vision",
	"themes":         "themes",
	"theme_file":     "themes",
}

var uiKeyMap = map[string]string{
	"output": "output",
	"format": "output",
	"color":  "color",
	"fields": "fields",
	"open":   "open",
	"scheme": "scheme",
	"addr":   "addr",
	"listen": "addr",
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	solverSection := make(map[string]any)
	uiSection := make(map[string]any)

	if block, ok := raw["solver"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("solver: %w", err)
		}
		if err := fillSection(solverSection, sub, solverKeyMap, "solver"); err != nil {
			return cfg, err
		}
	}
	if block, ok := raw["ui"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("ui: %w", err)
		}
		if err := fillSection(uiSection, sub, uiKeyMap, "ui"); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "solver", "ui":
			continue
		default:
			if canonical, ok := solverKeyMap[norm]; ok {
				solverSection[canonical] = value
				continue
			}
			if canonical, ok := uiKeyMap[norm]; ok {
				uiSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignSolver(solverSection, &cfg.Solver); err != nil {
		return cfg, fmt.Errorf("solver: %w", err)
	}
	if err := assignUI(uiSection, &cfg.UI); err != nil {
		return cfg, fmt.Errorf("ui: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignSolver(section map[string]any, dst *SolverConfig) error {
	for key, value := range section {
		switch key {
		case "ratio", "min_sep", "step", "scan_from", "scan_to", "dedup":
			f, err := expectFloat(value, key)
			if err != nil {
				return err
			}
			switch key {
			case "ratio":
				dst.Ratio = &f
			case "min_sep":
				dst.MinSep = &f
			case "step":
				dst.Step = &f
			case "scan_from":
				dst.ScanFrom = &f
			case "scan_to":
				dst.ScanTo = &f
			default:
				dst.Dedup = &f
			}
		case "count", "jobs":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			if key == "count" {
				dst.Count = &n
			} else {
				dst.Jobs = &n
			}
		case "size":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Size = &str
		case "preset":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Preset = &str
		case "themes":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Themes = &str
		case "vision":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Vision = &list
		default:
			return fmt.Errorf("unknown solver key: %s", key)
		}
	}
	return nil
}

func assignUI(section map[string]any, dst *UIConfig) error {
	for key, value := range section {
		switch key {
		case "open":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Open = &b
		case "output", "color", "fields", "scheme", "addr":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			switch key {
			case "output":
				dst.Output = &str
			case "color":
				dst.Color = &str
			case "fields":
				dst.Fields = &str
			case "scheme":
				dst.Scheme = &str
			default:
				dst.Addr = &str
			}
		default:
			return fmt.Errorf("unknown ui key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("expected string for %s, got %T", field, value)
	}
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return opts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectFloat(value any, field string) (float64, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid number for %s: %v", field, value)
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number for %s: %q", field, v)
		}
		f = n
	default:
		return 0, fmt.Errorf("expected number for %s, got %T", field, value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number for %s: %v", field, value)
	}
	return f, nil
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		parts := opts.SplitMulti([]string{v})
		return normalizeList(parts), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func normalizeList(values []string) []string {
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

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
