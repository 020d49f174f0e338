package model

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

func TestParseGridLayout(t *testing.T) {
	g := mustGrid(t, `
		#..
		.#.`)
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("parsed %dx%d, expected 3x2", g.Width(), g.Height())
	}
	if !g.Alive(0, 0) || !g.Alive(1, 1) || g.Alive(1, 0) {
		t.Fatalf("unexpected cells:\n%s", g)
	}
	if g.String() != "#..\n.#.\n" {
		t.Fatalf("String() = %q", g.String())
	}
}

func TestParseGridErrors(t *testing.T) {
	if _, err := ParseGrid("\n  \n"); errors.Cause(err) != ErrInvalidDimensions {
		t.Fatalf("empty input: %v", err)
	}
	if _, err := ParseGrid("##\n#"); errors.Cause(err) != ErrDimensionMismatch {
		t.Fatalf("ragged rows: %v", err)
	}
	if _, err := ParseGrid("#x"); err == nil {
		t.Fatal("unknown symbol accepted")
	}
}

func TestGridBoundsAndCopies(t *testing.T) {
	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(5, 5, Alive)
	g.Set(-1, 0, Alive)
	if g.CountLivingCells() != 0 {
		t.Fatal("out of bounds Set changed the grid")
	}
	if g.Get(3, 0) != Dead || g.Get(0, -1) != Dead {
		t.Fatal("out of bounds Get should report Dead")
	}

	g.Set(2, 1, Alive)
	c := g.Clone()
	g.Clear()
	if !c.Alive(2, 1) {
		t.Fatal("Clone shares storage with its source")
	}
	if err := g.CopyFrom(c); err != nil || !g.Alive(2, 1) {
		t.Fatalf("CopyFrom: %v", err)
	}
	other, _ := NewGrid(2, 3)
	if err := g.CopyFrom(other); errors.Cause(err) != ErrDimensionMismatch {
		t.Fatalf("CopyFrom other shape: %v", err)
	}
}

func TestSetNormalisesCellValues(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(0, 0, Cell(3))
	if g.Get(0, 0) != Alive || !g.Alive(0, 0) {
		t.Fatalf("Set(Cell(3)) stored %d, expected Alive", g.Get(0, 0))
	}
	if n := g.CountLivingCells(); n != 1 {
		t.Fatalf("population %d, expected 1", n)
	}
	if n := CountNeighbors(g, 1, 1, rules.Moore); n != 1 {
		t.Fatalf("neighbours of centre %d, expected 1", n)
	}

	next, alive, err := Step(g, rules.Conway, rules.Moore, nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(alive) != 0 || next.CountLivingCells() != 0 {
		t.Fatalf("lone cell produced %v", alive)
	}
}
