package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/browser"

	"github.com/phyten/palettex/internal/engine"
	"github.com/phyten/palettex/internal/output"
	"github.com/phyten/palettex/internal/progress"
	"github.com/phyten/palettex/internal/termcolor"
	"github.com/phyten/palettex/internal/web"
)

const mainUsage = `palettex - WCAG contrast, color vision and OKLCH scale checks

Usage:
  palettex <command> [flags] [colors...]

Commands:
  contrast   WCAG ratio and level for --fg/--bg pairs
  simulate   protan/deutan/tritan view of colors or the selected theme
  adjust     nearest lightness change that meets --target
  correct    fix a given scale so every rule passes
  suggest    search accent scales that pass every rule
  audit      contrast matrix of a tone and accent theme
  distinct   colors that collapse under a color vision deficiency
  serve      start the web UI

Run 'palettex <command> -h' for the flags of a command.
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" || os.Args[1] == "help" {
		fmt.Fprint(os.Stderr, mainUsage)
		if len(os.Args) < 2 {
			os.Exit(2)
		}
		return
	}
	cmd, args := os.Args[1], os.Args[2:]
	if cmd == "serve" {
		serveCmd(args)
		return
	}
	os.Exit(runCmd(cmd, args, os.Stdout, os.Stderr))
}

// runCmd executes one engine subcommand and returns the exit code.
func runCmd(cmd string, args []string, stdout, stderr *os.File) int {
	logger := log.New(stderr, "palettex "+cmd+": ", 0)
	cfg, err := parseArgs(cmd, args, os.Getenv)
	if err != nil {
		logger.Print(err)
		return 2
	}
	if cfg.showHelp {
		fmt.Fprintf(stderr, "Usage: palettex %s [flags] [colors...]\n\n%s", cmd, cfg.usage)
		return 0
	}

	env := termcolor.EnvMap(os.Environ())
	if cfg.req.Scheme == "auto" {
		scheme, err := termcolor.ResolveScheme(cfg.ui.Scheme, env)
		if err != nil {
			logger.Print(err)
			return 2
		}
		cfg.req.Scheme = scheme.Name()
	}
	if cfg.kind == engine.KindSuggest && progress.ShouldShowProgress(cfg.forceProg, cfg.noProg, stderr) {
		cfg.req.ProgressObserver = progress.NewAutoObserver(stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := engine.Run(ctx, cfg.kind, cfg.req)
	if err != nil {
		logger.Print(err)
		return 1
	}

	mode, err := termcolor.ParseMode(cfg.ui.Color)
	if err != nil {
		logger.Print(err)
		return 2
	}
	enabled, profile := termcolor.Resolve(mode, stdout, env)
	if err := output.Write(stdout, cfg.ui.Output, res.Dataset, cfg.ui.Fields, output.Style{Color: enabled, Profile: profile}); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

func serveCmd(args []string) {
	cfg, err := parseArgs("serve", args, os.Getenv)
	if err != nil {
		log.Printf("palettex serve: %v", err)
		os.Exit(2)
	}
	if cfg.showHelp {
		fmt.Fprintf(os.Stderr, "Usage: palettex serve [flags]\n\n%s", cfg.usage)
		return
	}

	mux := http.NewServeMux()
	web.New(cfg.req.Options, cfg.req.Themes, cfg.ui.Scheme).Register(mux)

	addr := cfg.ui.Addr
	url := "http://" + browserHost(addr)
	if cfg.configPath != "" {
		log.Printf("palettex serve listening on %s (config=%s)", url, cfg.configPath)
	} else {
		log.Printf("palettex serve listening on %s", url)
	}
	if cfg.ui.Open {
		go func() {
			if err := browser.OpenURL(url); err != nil {
				log.Printf("palettex serve: failed to open browser: %v", err)
			}
		}()
	}
	log.Fatal(http.ListenAndServe(addr, mux))
}

// browserHost turns a listen address such as ":8080" into something a
// browser can open.
func browserHost(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "127.0.0.1" + addr
	}
	if strings.HasPrefix(addr, "0.0.0.0:") {
		return "127.0.0.1" + strings.TrimPrefix(addr, "0.0.0.0")
	}
	return addr
}
