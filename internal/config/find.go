package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Where a config file was found, as reported by Find.
const (
	SourceExplicit = "explicit"
	SourceCwdUp    = "cwd-up"
	SourceXDG      = "xdg"
	SourceHome     = "home"
)

var extensions = []string{".yaml", ".yml", ".toml", ".json"}

// Find locates the config file. An explicit path (--config or
// PALETTEX_CONFIG) must exist. Otherwise the first .palettex.<ext> found
// walking up from dir wins, then $XDG_CONFIG_HOME/palettex/config.<ext>
// (xdg defaults to $HOME/.config), then $HOME/.palettex.<ext>. No file is
// not an error: the path is empty.
func Find(dir, explicit, xdg, home string) (string, string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		path, err := filepath.Abs(explicit)
		if err != nil {
			return "", "", err
		}
		info, err := os.Stat(path)
		if err != nil {
			return "", "", err
		}
		if info.IsDir() {
			return "", "", fmt.Errorf("config path %q is a directory", path)
		}
		return path, SourceExplicit, nil
	}

	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	cur, err := filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}
	for {
		if path := firstFile(cur, ".palettex"); path != "" {
			return path, SourceCwdUp, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	if home = strings.TrimSpace(home); home == "" {
		home, _ = os.UserHomeDir()
	}
	if xdg = strings.TrimSpace(xdg); xdg == "" && home != "" {
		xdg = filepath.Join(home, ".config")
	}
	if xdg != "" {
		if path := firstFile(filepath.Join(xdg, "palettex"), "config"); path != "" {
			return path, SourceXDG, nil
		}
	}
	if home != "" {
		if path := firstFile(home, ".palettex"); path != "" {
			return path, SourceHome, nil
		}
	}
	return "", "", nil
}

// firstFile returns dir/base<ext> for the first extension that is a regular file.
func firstFile(dir, base string) string {
	for _, ext := range extensions {
		path := filepath.Join(dir, base+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
