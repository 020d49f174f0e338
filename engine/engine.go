// Package engine holds the state of one running simulation: the grid buffers, the active
// rule and topology, and the generation counter. The caller owns the Engine and drives it
// one tick at a time; rule and topology changes apply from the next Step on.
package engine

import (
	"math/rand/v2"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// Options describe a simulation at construction time.
type Options struct {
	Width    int
	Height   int
	Rule     rules.Rule
	Topology rules.Topology
	InitMode model.InitMode
	Seed     int64
	Parallel bool
	Workers  int
	Bounded  bool
	// Pool recycles the scratch grid Reset fills before loading it into the stepper.
	Pool     bool
}

// DefaultOptions returns a 60x30 Conway board on the Moore neighbourhood.
func DefaultOptions() Options {
	return Options{
		Width:    60,
		Height:   30,
		Rule:     rules.Conway,
		Topology: rules.Moore,
		InitMode: model.Random,
	}
}

// OptionsFromConfig validates cfg and converts it into Options.
func OptionsFromConfig(cfg utils.Config) (Options, error) {
	s, err := cfg.Validate()
	if err != nil {
		return Options{}, errors.Wrap(err, "[OptionsFromConfig]")
	}
	return Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Rule:     s.Rule,
		Topology: s.Topology,
		InitMode: s.InitMode,
		Seed:     cfg.Seed,
		Parallel: cfg.UseParallel,
		Workers:  cfg.Workers,
		Bounded:  cfg.UseBoundedGrid,
		Pool:     cfg.UseMemoryPool,
	}, nil
}

// Engine is a single simulation.
type Engine struct {
	logger log.Logger
	rng    *rand.Rand

	stepper  *model.Stepper
	pool     *model.GridPool
	rule     rules.Rule
	topology rules.Topology

	generation  int
	history     model.History
	stagnant    bool
	stagnantRun int
}

// New builds the initial generation and validates the rule against the topology.
func New(opts Options, logger log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if err := opts.Rule.ValidFor(opts.Topology); err != nil {
		return nil, errors.Wrap(err, "[engine.New]")
	}

	rng := model.NewRNG(opts.Seed)
	grid, err := model.Initialize(opts.Width, opts.Height, opts.InitMode, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[engine.New]")
	}

	var stepperOpts []model.StepperOption
	if opts.Parallel {
		stepperOpts = append(stepperOpts, model.WithParallel(opts.Workers))
	}
	if opts.Bounded {
		stepperOpts = append(stepperOpts, model.WithBounded())
	}

	e := &Engine{
		logger:   logger,
		rng:      rng,
		stepper:  model.NewStepper(grid, stepperOpts...),
		rule:     opts.Rule,
		topology: opts.Topology,
	}
	if opts.Pool {
		e.pool = model.NewGridPool()
	}

	level.Info(logger).Log(
		"msg", "engine initialized",
		"width", opts.Width,
		"height", opts.Height,
		"cells", opts.Width*opts.Height,
		"rule", e.rule,
		"topology", e.topology,
		"init", opts.InitMode,
		"pool", opts.Pool,
	)
	return e, nil
}

// SetRule parses s and makes it the active rule. On error the previous rule stays active.
func (e *Engine) SetRule(s string) (rules.Rule, error) {
	r, err := rules.ParseRule(s)
	if err != nil {
		level.Warn(e.logger).Log("msg", "rule rejected", "rule", s, "err", err)
		return e.rule, errors.Wrap(err, "[Engine.SetRule]")
	}
	if err = e.useRule(r); err != nil {
		return e.rule, err
	}
	return r, nil
}

// SetPreset activates the i-th entry of rules.Presets.
func (e *Engine) SetPreset(i int) (rules.Rule, error) {
	r, ok := rules.Preset(i)
	if !ok {
		return e.rule, errors.Errorf("[Engine.SetPreset] no preset %d", i)
	}
	if err := e.useRule(r); err != nil {
		return e.rule, err
	}
	return r, nil
}

func (e *Engine) useRule(r rules.Rule) error {
	if err := r.ValidFor(e.topology); err != nil {
		level.Warn(e.logger).Log("msg", "rule rejected", "rule", r, "topology", e.topology, "err", err)
		return errors.Wrap(err, "[Engine.SetRule]")
	}
	e.rule = r
	level.Info(e.logger).Log("msg", "set rule", "rule", r)
	return nil
}

// SetTopology switches the neighbourhood. Unknown values, and topologies too small for the
// active rule, are rejected and leave the previous topology in place.
func (e *Engine) SetTopology(t rules.Topology) error {
	if err := t.Validate(); err != nil {
		level.Error(e.logger).Log("msg", "topology rejected", "err", err)
		return errors.Wrap(err, "[Engine.SetTopology]")
	}
	if err := e.rule.ValidFor(t); err != nil {
		level.Warn(e.logger).Log("msg", "topology rejected", "topology", t, "rule", e.rule, "err", err)
		return errors.Wrap(err, "[Engine.SetTopology]")
	}
	e.topology = t
	level.Info(e.logger).Log("msg", "set topology", "topology", t)
	return nil
}

// Reset repopulates the grid in place and starts counting generations again.
func (e *Engine) Reset(mode model.InitMode) error {
	grid, err := e.scratch()
	if err != nil {
		return errors.Wrap(err, "[Engine.Reset]")
	}
	defer model.GridToPool(grid, e.pool)

	if err = model.Populate(grid, mode, e.rng); err != nil {
		return errors.Wrap(err, "[Engine.Reset]")
	}
	if err = e.stepper.Load(grid); err != nil {
		return errors.Wrap(err, "[Engine.Reset]")
	}
	e.generation = 0
	e.stagnant = false
	e.stagnantRun = 0
	e.history.Reset()
	level.Info(e.logger).Log("msg", "reset", "init", mode, "alive", e.stepper.Population())
	return nil
}

// scratch returns an all-dead grid shaped like the current one, from the pool when enabled.
func (e *Engine) scratch() (*model.Grid, error) {
	cur := e.stepper.Current()
	if e.pool != nil {
		return e.pool.Get(cur.Width(), cur.Height()), nil
	}
	return model.NewGrid(cur.Width(), cur.Height())
}

// Step advances one generation with the rule and topology active at the time of the call
// and returns the live cells of the new generation in row-major order.
func (e *Engine) Step() ([]model.Coord, error) {
	rule, topology := e.rule, e.topology

	prev := e.stepper.Current().GetGridHash()
	alive, err := e.stepper.Step(rule, topology)
	if err != nil {
		return nil, errors.Wrapf(err, "[Engine.Step] generation %d", e.generation)
	}
	e.history.Record(prev)
	e.generation++
	e.stagnant = e.history.Stagnant(e.stepper.Current().GetGridHash())
	if e.stagnant {
		e.stagnantRun++
	} else {
		e.stagnantRun = 0
	}

	level.Debug(e.logger).Log(
		"msg", "step",
		"generation", e.generation,
		"alive", len(alive),
		"rule", rule,
		"topology", topology,
		"stagnant", e.stagnant,
	)
	return alive, nil
}

// Grid exposes the current generation. It must not be modified.
func (e *Engine) Grid() *model.Grid {
	return e.stepper.Current()
}

// Rule returns the active rule
func (e *Engine) Rule() rules.Rule {
	return e.rule
}

// Topology returns the active topology
func (e *Engine) Topology() rules.Topology {
	return e.topology
}

// Generation returns the number of steps since construction or the last Reset
func (e *Engine) Generation() int {
	return e.generation
}

// Population returns the number of live cells
func (e *Engine) Population() int {
	return e.stepper.Population()
}

// BoundingBoxSize returns the area of the region holding live cells
func (e *Engine) BoundingBoxSize() int {
	return e.stepper.BoundingBoxSize()
}

// Stagnant reports whether the last step reproduced one of the few preceding generations.
func (e *Engine) Stagnant() bool {
	return e.stagnant
}

// StagnantRun counts the consecutive steps, up to and including the last one, that were stagnant.
func (e *Engine) StagnantRun() int {
	return e.stagnantRun
}
