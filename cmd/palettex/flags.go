package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/phyten/palettex/internal/config"
	"github.com/phyten/palettex/internal/engine"
	"github.com/phyten/palettex/internal/opts"
	"github.com/phyten/palettex/internal/palette"
)

// cliConfig is everything a subcommand needs after all layers are merged.
type cliConfig struct {
	kind       engine.Kind // empty for serve
	req        engine.Request
	ui         config.UISettings
	configPath string
	forceProg  bool
	noProg     bool
	showHelp   bool
	usage      string
}

// listFlag collects repeated flags; each value may itself be comma separated.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, opts.SplitMulti([]string{v})...)
	return nil
}

type cliFlags struct {
	configPath string

	output, color, fields, scheme string
	addr                          string
	open                          bool

	ratio, minSep, step, scanFrom, scanTo, dedup float64
	size                                         string
	large                                        bool
	count, jobs                                  int
	preset, themes                               string
	vision                                       listFlag

	fg, bg, surface, rule listFlag
	accent, light, dark   string
	target, threshold     float64

	progress, noProgress bool
}

func newFlagSet(cmd string, f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("palettex "+cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.configPath, "config", "", "config file (default: search .palettex.* then XDG and HOME)")
	fs.StringVar(&f.scheme, "scheme", "auto", "auto|light|dark preview tone")
	fs.StringVar(&f.themes, "themes", "", "palette theme file (yaml|toml|json)")

	if cmd == "serve" {
		fs.StringVar(&f.addr, "addr", "", "listen address (default 127.0.0.1:8080)")
		fs.BoolVar(&f.open, "open", false, "open the page in a browser")
	} else {
		fs.StringVar(&f.output, "output", "table", "table|json|ndjson|csv|markdown|cards")
		fs.StringVar(&f.output, "o", "table", "alias of --output")
		fs.StringVar(&f.color, "color", "auto", "auto|always|never")
		fs.StringVar(&f.fields, "fields", "", "comma separated columns")
	}

	fs.Float64Var(&f.ratio, "ratio", 0, "required contrast ratio (default 4.5)")
	fs.StringVar(&f.size, "size", "", "normal|large text")
	fs.BoolVar(&f.large, "large", false, "shortcut for --size large")
	fs.Var(&f.vision, "vision", "protan|deutan|tritan (repeatable)")
	fs.StringVar(&f.accent, "accent", "", "accent theme name")
	fs.StringVar(&f.light, "light", "", "light tone theme name")
	fs.StringVar(&f.dark, "dark", "", "dark tone theme name")

	switch cmd {
	case "contrast", "adjust":
		fs.Var(&f.fg, "fg", "foreground color (repeatable)")
		fs.Var(&f.bg, "bg", "background color (repeatable)")
		if cmd == "adjust" {
			fs.Float64Var(&f.target, "target", 0, "target ratio (default --ratio)")
		}
	case "distinct":
		fs.Float64Var(&f.threshold, "threshold", 0, "minimum ΔE between simulated colors (default 10)")
	case "correct", "suggest", "serve":
		fs.StringVar(&f.preset, "preset", "", "trio|quad")
		fs.Float64Var(&f.minSep, "min-sep", 0, "minimum ΔL between slots")
		fs.Var(&f.surface, "surface", "custom surface name=#hex (repeatable)")
		fs.Var(&f.rule, "rule", "slot:surface[:ratio] (repeatable)")
	}
	if cmd == "suggest" || cmd == "serve" {
		fs.IntVar(&f.count, "count", 0, "number of candidates")
		fs.IntVar(&f.jobs, "jobs", 0, "max parallel workers")
		fs.Float64Var(&f.step, "step", 0, "anchor step")
		fs.Float64Var(&f.scanFrom, "scan-from", 0, "first anchor lightness")
		fs.Float64Var(&f.scanTo, "scan-to", 0, "last anchor lightness")
		fs.Float64Var(&f.dedup, "dedup", 0, "minimum ΔL between candidates")
	}
	if cmd == "suggest" {
		fs.BoolVar(&f.progress, "progress", false, "force progress even when piped")
		fs.BoolVar(&f.noProgress, "no-progress", false, "disable progress/ETA")
	}
	return fs
}

// parseInterleaved lets positional colors and flags appear in any order.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if rest[0] == "--" {
			return append(positional, rest[1:]...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// flagLayer turns the flags that were actually given into a config layer so
// they override file and env values only when present.
func flagLayer(fs *flag.FlagSet, f *cliFlags) config.Config {
	var cfg config.Config
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "output", "o":
			cfg.UI.Output = &f.output
		case "color":
			cfg.UI.Color = &f.color
		case "fields":
			cfg.UI.Fields = &f.fields
		case "scheme":
			cfg.UI.Scheme = &f.scheme
		case "addr":
			cfg.UI.Addr = &f.addr
		case "open":
			cfg.UI.Open = &f.open
		case "ratio":
			cfg.Solver.Ratio = &f.ratio
		case "size":
			cfg.Solver.Size = &f.size
		case "count":
			cfg.Solver.Count = &f.count
		case "jobs":
			cfg.Solver.Jobs = &f.jobs
		case "preset":
			cfg.Solver.Preset = &f.preset
		case "min-sep":
			cfg.Solver.MinSep = &f.minSep
		case "step":
			cfg.Solver.Step = &f.step
		case "scan-from":
			cfg.Solver.ScanFrom = &f.scanFrom
		case "scan-to":
			cfg.Solver.ScanTo = &f.scanTo
		case "dedup":
			cfg.Solver.Dedup = &f.dedup
		case "vision":
			v := []string(f.vision)
			cfg.Solver.Vision = &v
		case "themes":
			cfg.Solver.Themes = &f.themes
		}
	})
	if f.large {
		large := "large"
		cfg.Solver.Size = &large
	}
	return cfg
}

// parseArgs parses one subcommand's flags and layers them over the config
// file and PALETTEX_* environment (defaults < file < env < flags).
func parseArgs(cmd string, args []string, getenv func(string) string) (cliConfig, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg cliConfig
	if cmd != "serve" {
		kind, ok := engine.ParseKind(cmd)
		if !ok {
			return cfg, fmt.Errorf("unknown command: %s", cmd)
		}
		cfg.kind = kind
	}

	var f cliFlags
	fs := newFlagSet(cmd, &f)
	cfg.usage = flagUsage(fs)
	positional, err := parseInterleaved(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		cfg.showHelp = true
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	explicit := f.configPath
	if explicit == "" {
		explicit = getenv("PALETTEX_CONFIG")
	}
	path, _, err := config.Find(".", explicit, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	var fileCfg config.Config
	if path != "" {
		if fileCfg, err = config.Load(path); err != nil {
			return cfg, err
		}
		if fileCfg.Solver.Themes != nil && *fileCfg.Solver.Themes != "" && !filepath.IsAbs(*fileCfg.Solver.Themes) {
			rel := filepath.Join(filepath.Dir(path), *fileCfg.Solver.Themes)
			fileCfg.Solver.Themes = &rel
		}
	}
	cfg.configPath = path
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return cfg, err
	}
	flagCfg := flagLayer(fs, &f)

	solver := config.MergeSolver(config.SolverSettingsFromOptions(opts.Defaults()), fileCfg.Solver, envCfg.Solver, flagCfg.Solver)
	o := opts.Defaults()
	if err := solver.ApplyToOptions(&o); err != nil {
		return cfg, err
	}
	if err := opts.NormalizeAndValidate(&o); err != nil {
		return cfg, err
	}
	ui, err := config.NormalizeUI(config.MergeUI(config.DefaultUISettings(), fileCfg.UI, envCfg.UI, flagCfg.UI))
	if err != nil {
		return cfg, err
	}
	cfg.ui = ui

	themes := palette.Default()
	if solver.Themes != "" {
		if themes, err = palette.Load(solver.Themes); err != nil {
			return cfg, err
		}
	}

	cfg.req = engine.Request{
		Options:     o,
		Themes:      themes,
		Foregrounds: f.fg,
		Backgrounds: f.bg,
		Colors:      opts.SplitMulti(positional),
		Surfaces:    f.surface,
		Rules:       f.rule,
		Accent:      f.accent,
		Light:       f.light,
		Dark:        f.dark,
		Scheme:      ui.Scheme,
		Target:      f.target,
		Threshold:   f.threshold,
	}
	cfg.forceProg = f.progress
	cfg.noProg = f.noProgress
	return cfg, nil
}

func flagUsage(fs *flag.FlagSet) string {
	var b strings.Builder
	fs.SetOutput(&b)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
	return b.String()
}
