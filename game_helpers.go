package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// runGame drives the engine until the generation limit or an interrupt
func runGame(cfg utils.Config) error {
	logger, closer, err := utils.NewLogger(cfg.Logging, cfg.Debug, cfg.LogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	eng, mode, err := initializeGame(cfg, logger)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	return gameLoop(eng, mode, cfg, logger, os.Stdout, sigChan)
}

// initializeGame builds the engine described by cfg
func initializeGame(cfg utils.Config, logger log.Logger) (*engine.Engine, model.InitMode, error) {
	opts, err := engine.OptionsFromConfig(cfg)
	if err != nil {
		return nil, 0, errors.Wrap(err, "[initializeGame]")
	}
	eng, err := engine.New(opts, logger)
	if err != nil {
		return nil, 0, errors.Wrap(err, "[initializeGame]")
	}
	return eng, opts.InitMode, nil
}

// gameLoop steps eng once per frame and reports progress to out when show-fps is on
func gameLoop(
	eng *engine.Engine,
	mode model.InitMode,
	cfg utils.Config,
	logger log.Logger,
	out io.Writer,
	stop <-chan os.Signal,
) error {
	stats := utils.NewStats()
	lastFrame := time.Now()

	for {
		select {
		case sig := <-stop:
			level.Info(logger).Log("msg", "shutting down", "signal", sig, "generations", stats.Generations)
			displayFinalStats(out, cfg, stats)
			return nil
		default:
		}

		if cfg.MaxGenerations > 0 && stats.Generations >= cfg.MaxGenerations {
			level.Info(logger).Log("msg", "generation limit reached", "generations", stats.Generations)
			displayFinalStats(out, cfg, stats)
			return nil
		}

		frameStart := time.Now()
		alive, err := eng.Step()
		if err != nil {
			level.Error(logger).Log("msg", "step failed", "err", err)
			return err
		}
		stats.Observe(len(alive), eng.BoundingBoxSize(), frameStart.Sub(lastFrame))
		lastFrame = frameStart

		if cfg.ShowFPS {
			displayGameStatus(out, eng, stats)
		}

		if cfg.AutoRestart {
			if reason := restartReason(eng, cfg.StagnationThreshold); reason != keepRunning {
				level.Info(logger).Log("msg", "restarting", "reason", reason, "generation", eng.Generation())
				if err = eng.Reset(mode); err != nil {
					return err
				}
				stats.Restarted()
			}
		}

		if cfg.FrameRate > 0 {
			time.Sleep(cfg.FrameRate)
		}
	}
}

// displayGameStatus prints one status line for the current generation
func displayGameStatus(out io.Writer, eng *engine.Engine, stats *utils.Stats) {
	grid := eng.Grid()
	density := float64(stats.Population) / float64(grid.Width()*grid.Height()) * 100
	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Bounding box: %d cells | %.1f gen/sec | Rule: %s | %s\n",
		eng.Generation(), stats.Population, density, stats.BoundingBoxSize,
		stats.Rate, eng.Rule(), eng.Topology())
}

// displayFinalStats prints the run summary
func displayFinalStats(out io.Writer, cfg utils.Config, stats *utils.Stats) {
	if !cfg.ShowFPS {
		return
	}
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds, %d restarts\n",
		stats.Generations, stats.Runtime().Seconds(), stats.Restarts)
	fmt.Fprintf(out, "Population: %d now, %d peak, %.1f mean\n",
		stats.Population, stats.PeakPopulation, stats.MeanPopulation)
}

// restartCause names why the runner repopulates the board.
type restartCause string

const (
	keepRunning   restartCause = ""
	causeExtinct  restartCause = "extinction"
	causeStagnant restartCause = "stagnation"
)

// restartReason decides whether eng has stopped evolving. An empty board only counts as
// extinct when the rule cannot give birth with zero neighbours. Stagnation needs threshold
// consecutive generations that repeat one of the recent ones; a threshold of 0 disables it.
func restartReason(eng *engine.Engine, threshold int) restartCause {
	if eng.Population() == 0 && !eng.Rule().BirthsFromNothing() {
		return causeExtinct
	}
	if threshold > 0 && eng.StagnantRun() >= threshold {
		return causeStagnant
	}
	return keepRunning
}
