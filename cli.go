package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	appName    = "go-life"
	appVersion = "0.7.0"

	flagConfig      = "config"
	flagWidth       = "width"
	flagHeight      = "height"
	flagRule        = "rule"
	flagInit        = "init"
	flagSeed        = "seed"
	flagGenerations = "generations"
	flagFrameRate   = "frame-rate"
	flagMoore       = "Moore"
	flagNeumann     = "Neumann"
	flagLogging     = "logging"
	flagNoLogging   = "no-logging"
	flagLogFile     = "log-file"
	flagDebug       = "debug"
	flagShowFPS     = "show-fps"
	flagNoShowFPS   = "no-show-fps"
	flagParallel    = "parallel"
	flagBounded     = "bounded"
	flagNoBounded   = "no-bounded"
	flagMemoryPool  = "memory-pool"
	flagNoPool      = "no-memory-pool"
	flagRestart     = "auto-restart"
)

// newApp wires the command line to run, which receives the merged configuration.
func newApp(run func(utils.Config) error) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = appVersion
	app.Usage = "headless driver for the Game of Life kernel"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: flagConfig + ", c", Usage: "JSON configuration file"},
		cli.IntFlag{Name: flagWidth, Usage: "grid width in cells"},
		cli.IntFlag{Name: flagHeight, Usage: "grid height in cells"},
		cli.StringFlag{Name: flagRule + ", r", Usage: `birth/survival rule, e.g. "b3/s23"`},
		cli.StringFlag{Name: flagInit, Usage: "initial population: random or dot"},
		cli.Int64Flag{Name: flagSeed, Usage: "random seed, 0 picks one from the clock"},
		cli.IntFlag{Name: flagGenerations + ", g", Usage: "stop after this many generations, 0 runs until interrupted"},
		cli.DurationFlag{Name: flagFrameRate, Usage: "pause between generations"},
		cli.BoolFlag{Name: flagMoore + ", M", Usage: "count neighbours in the Moore neighbourhood"},
		cli.BoolFlag{Name: flagNeumann + ", N", Usage: "count neighbours in the von Neumann neighbourhood"},
		cli.BoolFlag{Name: flagLogging + ", L", Usage: "enable logging"},
		cli.BoolFlag{Name: flagNoLogging, Usage: "disable logging"},
		cli.StringFlag{Name: flagLogFile, Usage: "write logs to this file instead of stderr"},
		cli.BoolFlag{Name: flagDebug, Usage: "log every generation"},
		cli.BoolFlag{Name: flagShowFPS + ", S", Usage: "print generation rate and population"},
		cli.BoolFlag{Name: flagNoShowFPS, Usage: "do not print generation rate"},
		cli.BoolFlag{Name: flagParallel, Usage: "spread each generation over all CPUs"},
		cli.BoolFlag{Name: flagBounded, Usage: "only scan the region around live cells"},
		cli.BoolFlag{Name: flagNoBounded, Usage: "scan the whole grid every generation"},
		cli.BoolFlag{Name: flagMemoryPool, Usage: "recycle scratch grids on restart"},
		cli.BoolFlag{Name: flagNoPool, Usage: "allocate a fresh grid on every restart"},
		cli.BoolFlag{Name: flagRestart, Usage: "restart on extinction or stagnation"},
	}
	app.Action = func(c *cli.Context) error {
		cfg, err := configFromContext(c)
		if err != nil {
			return err
		}
		return run(cfg)
	}
	return app
}

// configFromContext loads the optional config file and applies the flags on top.
func configFromContext(c *cli.Context) (utils.Config, error) {
	cfg := utils.DefaultConfig()
	if path := c.String(flagConfig); path != "" {
		var err error
		if cfg, err = utils.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if c.IsSet(flagWidth) {
		cfg.Width = c.Int(flagWidth)
	}
	if c.IsSet(flagHeight) {
		cfg.Height = c.Int(flagHeight)
	}
	if c.IsSet(flagRule) {
		cfg.Rule = c.String(flagRule)
	}
	if c.IsSet(flagInit) {
		cfg.InitMode = c.String(flagInit)
	}
	if c.IsSet(flagSeed) {
		cfg.Seed = c.Int64(flagSeed)
	}
	if c.IsSet(flagGenerations) {
		cfg.MaxGenerations = c.Int(flagGenerations)
	}
	if c.IsSet(flagFrameRate) {
		cfg.FrameRate = c.Duration(flagFrameRate)
	}
	if c.IsSet(flagLogFile) {
		cfg.LogFile = c.String(flagLogFile)
	}

	switch {
	case c.Bool(flagMoore) && c.Bool(flagNeumann):
		return cfg, errors.Errorf("[configFromContext] --%s and --%s are mutually exclusive", flagMoore, flagNeumann)
	case c.Bool(flagMoore):
		cfg.Topology = rules.Moore.String()
	case c.Bool(flagNeumann):
		cfg.Topology = rules.VonNeumann.String()
	}

	switch {
	case c.Bool(flagLogging):
		cfg.Logging = true
	case c.Bool(flagNoLogging):
		cfg.Logging = false
	}
	switch {
	case c.Bool(flagShowFPS):
		cfg.ShowFPS = true
	case c.Bool(flagNoShowFPS):
		cfg.ShowFPS = false
	}
	if c.Bool(flagDebug) {
		cfg.Debug = true
	}
	if c.Bool(flagParallel) {
		cfg.UseParallel = true
	}
	switch {
	case c.Bool(flagBounded):
		cfg.UseBoundedGrid = true
	case c.Bool(flagNoBounded):
		cfg.UseBoundedGrid = false
	}
	switch {
	case c.Bool(flagMemoryPool):
		cfg.UseMemoryPool = true
	case c.Bool(flagNoPool):
		cfg.UseMemoryPool = false
	}
	if c.Bool(flagRestart) {
		cfg.AutoRestart = true
	}

	if _, err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
