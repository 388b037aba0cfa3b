package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"rpgame/pkg/engine/terminal"
	"rpgame/pkg/game/devtools"
	"rpgame/pkg/game/generator"
	"rpgame/pkg/game/renderer"
	"rpgame/pkg/game/renderer/tui"
)

// options holds the parsed command line
type options struct {
	rows          int
	cols          int
	fill          int
	batch         int
	maxIterations int
	seed          int64
	color         bool
	dumpPath      string
	htmlPath      string
	check         bool
	verbose       bool
	locale        string
	localeDir     string
}

func parseFlags() options {
	var o options
	flag.IntVar(&o.rows, "rows", 0, "grid height (0 = fit the terminal)")
	flag.IntVar(&o.cols, "cols", 0, "grid width (0 = fit the terminal)")
	flag.IntVar(&o.fill, "fill", generator.DefaultFillTarget, "target fill percentage")
	flag.IntVar(&o.batch, "batch", generator.DefaultBatchSize, "iterations between fill rate checks")
	flag.IntVar(&o.maxIterations, "max-iterations", generator.DefaultMaxIterations, "cap on room attempts (0 = no cap)")
	flag.Int64Var(&o.seed, "seed", 0, "random seed (0 = time based)")
	flag.BoolVar(&o.color, "color", terminal.IsTerminal(), "colour the map")
	flag.StringVar(&o.dumpPath, "dump", "", "write a debug dump of the level to this file")
	flag.StringVar(&o.htmlPath, "html", "", "save the map as an HTML page to this file")
	flag.BoolVar(&o.check, "check", false, "verify grid invariants and exit non-zero on failure")
	flag.BoolVar(&o.verbose, "verbose", false, "log generation progress to stderr")
	flag.StringVar(&o.locale, "locale", "", "language for messages, e.g. en_GB")
	flag.StringVar(&o.localeDir, "locale-dir", "locales", "directory holding translations")
	flag.Parse()
	return o
}

// initGettext loads translations when a locale was requested
func initGettext(o options) {
	if o.locale == "" {
		return
	}
	gotext.Configure(o.localeDir, o.locale, "default")
}

// buildConfig turns the command line into a generator config
func buildConfig(o options) generator.Config {
	cfg := generator.DefaultConfig()
	cfg.FillTarget = o.fill
	cfg.BatchSize = o.batch
	cfg.MaxIterations = o.maxIterations

	cfg.Seed = o.seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	rows, cols := cfg.Rows, cfg.Cols
	if terminal.IsTerminal() {
		width, height := terminal.GetSize()
		rows, cols = terminal.FitGrid(width, height, tui.SummaryLines+1, generator.DefaultRows/2)
	}
	if o.rows > 0 {
		rows = o.rows
	}
	if o.cols > 0 {
		cols = o.cols
	}
	cfg.Rows, cfg.Cols = rows, cols

	if o.verbose {
		cfg.Logger = log.New(os.Stderr, "rpgame: ", log.LstdFlags)
	}
	return cfg
}

func run(o options) error {
	cfg := buildConfig(o)

	gen, err := generator.New(cfg)
	if err != nil {
		return err
	}

	grid, err := gen.Generate()
	if err != nil {
		return err
	}

	renderer.Current = tui.New(o.color)
	renderer.Current.Init()
	renderer.Current.RenderGrid(os.Stdout, grid)
	renderer.Current.RenderSummary(os.Stdout, grid, cfg.Seed)

	if o.dumpPath != "" {
		path, err := devtools.DumpMapToFile(grid, cfg, o.dumpPath)
		if err != nil {
			return fmt.Errorf("writing dump: %w", err)
		}
		fmt.Println(gotext.Get("Dump written to %s", path))
	}

	if o.htmlPath != "" {
		path, err := devtools.SaveScreenshotHTML(grid, renderer.Current, cfg.Seed, o.htmlPath)
		if err != nil {
			return fmt.Errorf("writing screenshot: %w", err)
		}
		fmt.Println(gotext.Get("Screenshot saved to %s", path))
	}

	if o.check {
		if err := grid.CheckInvariants(); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	o := parseFlags()
	initGettext(o)

	if err := run(o); err != nil {
		fmt.Fprintln(os.Stderr, "rpgame:", err)
		os.Exit(1)
	}
}
