package model

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownInitMode is returned for an initialization mode other than Random or Dot.
var ErrUnknownInitMode = errors.New("unknown init mode")

// InitMode selects how a fresh grid is populated.
type InitMode uint8

const (
	// Random sets each cell alive with probability 0.5.
	Random InitMode = iota
	// Dot leaves a single live cell at the centre.
	Dot
)

func (m InitMode) String() string {
	switch m {
	case Random:
		return "random"
	case Dot:
		return "dot"
	}
	return "unknown"
}

// ParseInitMode converts "random" or "dot" into an InitMode
func ParseInitMode(s string) (InitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return Random, nil
	case "dot":
		return Dot, nil
	}
	return 0, errors.Wrapf(ErrUnknownInitMode, "[ParseInitMode] %q", s)
}

// NewRNG creates a deterministic source for the given seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Initialize creates a width x height grid populated according to mode.
func Initialize(width, height int, mode InitMode, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[Initialize]")
	}
	if err = Populate(g, mode, rng); err != nil {
		return nil, errors.Wrap(err, "[Initialize]")
	}
	return g, nil
}

// Populate overwrites every cell of g according to mode.
func Populate(g *Grid, mode InitMode, rng *rand.Rand) error {
	switch mode {
	case Random:
		if rng == nil {
			return errors.New("[Populate] random mode needs a source")
		}
		for i := range g.cells {
			g.cells[i] = Cell(rng.IntN(2))
		}
	case Dot:
		g.Clear()
		g.Set(g.width/2, g.height/2, Alive)
	default:
		return errors.Wrapf(ErrUnknownInitMode, "[Populate] value %d", uint8(mode))
	}
	return nil
}
