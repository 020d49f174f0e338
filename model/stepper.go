package model

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// StepperOption configures a Stepper
type StepperOption func(*Stepper)

// WithParallel spreads each pass over the given number of workers.
// A non-positive count uses one worker per CPU.
func WithParallel(workers int) StepperOption {
	return func(s *Stepper) {
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		s.workers = workers
	}
}

// WithBounded restricts each pass to the bounding box of live cells plus a one cell
// margin. Rules that birth cells from zero neighbours always get a full pass.
func WithBounded() StepperOption {
	return func(s *Stepper) {
		s.bounded = true
	}
}

// activeBounds is the inclusive bounding box of the live cells of a grid.
type activeBounds struct {
	minX, maxX, minY, maxY int
	valid                  bool
}

// boundsOf derives the bounding box from a row-major list of live cells.
func boundsOf(alive []Coord) activeBounds {
	if len(alive) == 0 {
		return activeBounds{}
	}
	b := activeBounds{
		minX:  alive[0].X,
		maxX:  alive[0].X,
		minY:  alive[0].Y,
		maxY:  alive[len(alive)-1].Y,
		valid: true,
	}
	for _, c := range alive[1:] {
		b.minX = min(b.minX, c.X)
		b.maxX = max(b.maxX, c.X)
	}
	return b
}

// Size returns the area of the bounding box, 0 when there are no live cells
func (b activeBounds) Size() int {
	if !b.valid {
		return 0
	}
	return (b.maxX - b.minX + 1) * (b.maxY - b.minY + 1)
}

// Stepper owns a current and a next buffer and advances the current one a generation
// at a time, swapping the two after every pass so no grid is allocated per tick.
type Stepper struct {
	cur, nxt *Grid

	workers int
	bounded bool

	bounds     activeBounds
	population int
}

// NewStepper takes ownership of initial as the current generation.
func NewStepper(initial *Grid, opts ...StepperOption) *Stepper {
	s := &Stepper{
		cur:     initial,
		nxt:     newGrid(initial.width, initial.height),
		workers: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refresh()
	return s
}

// Current exposes the current generation. Callers must treat it as read-only.
func (s *Stepper) Current() *Grid {
	return s.cur
}

// Population returns the number of live cells in the current generation
func (s *Stepper) Population() int {
	return s.population
}

// BoundingBoxSize returns the area of the live region of the current generation
func (s *Stepper) BoundingBoxSize() int {
	return s.bounds.Size()
}

// Load replaces the current generation with a copy of g.
func (s *Stepper) Load(g *Grid) error {
	if err := s.cur.CopyFrom(g); err != nil {
		return errors.Wrap(err, "[Stepper.Load]")
	}
	s.refresh()
	return nil
}

// refresh recomputes cached facts after the current grid was written in place.
func (s *Stepper) refresh() {
	alive := s.cur.AliveCells()
	s.bounds = boundsOf(alive)
	s.population = len(alive)
}

// Step advances one generation and returns the cells alive in it, in row-major order.
// The topology is checked before any cell is read; on error nothing changes.
func (s *Stepper) Step(rule rules.Rule, t rules.Topology) ([]Coord, error) {
	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(err, "[Stepper.Step] refusing to scan")
	}
	offsets := offsetsFor(t)

	rows := span{0, s.cur.height}
	cols := span{0, s.cur.width}
	if s.bounded && !rule.BirthsFromNothing() {
		if !s.bounds.valid {
			// Nothing alive and nothing can be born.
			s.nxt.Clear()
			s.swap(nil)
			return []Coord{}, nil
		}
		rows = span{max(0, s.bounds.minY-1), min(s.cur.height, s.bounds.maxY+2)}
		cols = span{max(0, s.bounds.minX-1), min(s.cur.width, s.bounds.maxX+2)}
		s.nxt.Clear()
	}

	var (
		alive []Coord
		err   error
	)
	if s.workers > 1 && rows.len() > 1 {
		alive, err = stepRowsParallel(s.cur, s.nxt, rule, offsets, rows, cols, min(s.workers, rows.len()))
		if err != nil {
			return nil, errors.Wrap(err, "[Stepper.Step]")
		}
	} else {
		alive = stepRows(s.cur, s.nxt, rule, offsets, rows, cols, make([]Coord, 0, s.population))
	}

	s.swap(alive)
	return alive, nil
}

func (s *Stepper) swap(alive []Coord) {
	s.cur, s.nxt = s.nxt, s.cur
	s.bounds = boundsOf(alive)
	s.population = len(alive)
}
