package termcolor

import (
	"fmt"
	"strconv"
	"strings"
)

type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeDark
	SchemeLight
)

// Name returns the tone family a scheme previews against.
func (s Scheme) Name() string {
	if s == SchemeLight {
		return "light"
	}
	return "dark"
}

func DetectScheme(env map[string]string) Scheme {
	if env == nil {
		return SchemeDark
	}
	raw := strings.TrimSpace(env["COLORFGBG"])
	if raw != "" {
		parts := strings.Split(raw, ";")
		bgRaw := strings.TrimSpace(parts[len(parts)-1])
		if bgRaw == "" && len(parts) >= 2 {
			bgRaw = strings.TrimSpace(parts[len(parts)-2])
		}
		if bg, err := strconv.Atoi(bgRaw); err == nil {
			if bg >= 7 {
				return SchemeLight
			}
			if bg >= 0 {
				return SchemeDark
			}
		}
	}
	termName := strings.ToLower(strings.TrimSpace(env["TERM"]))
	if strings.Contains(termName, "light") {
		return SchemeLight
	}
	return SchemeDark
}

// ResolveScheme honours an explicit "light" or "dark" setting and falls back
// to DetectScheme for "auto".
func ResolveScheme(setting string, env map[string]string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "", "auto":
		return DetectScheme(env), nil
	case "light":
		return SchemeLight, nil
	case "dark":
		return SchemeDark, nil
	default:
		return SchemeUnknown, fmt.Errorf("unknown scheme: %s", setting)
	}
}
