package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive size.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrDimensionMismatch is returned when two grids that must share a shape do not.
	ErrDimensionMismatch = errors.New("grid dimensions differ")
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X int
	Y int
}

// Grid is a fixed-size board of cells stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// reset resizes the grid to new dimensions and clears it. Only pooled grids change shape.
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height
	if cap(g.cells) < width*height {
		g.cells = make([]Cell, width*height)
		return
	}
	g.cells = g.cells[:width*height]
	g.Clear()
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive or dead. Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.inBounds(x, y) {
		return
	}
	if c != Dead {
		c = Alive
	}
	g.cells[g.index(x, y)] = c
}

// Get returns the state of a cell; anything off the board is Dead.
func (g *Grid) Get(x, y int) Cell {
	if !g.inBounds(x, y) {
		return Dead
	}
	return g.cells[g.index(x, y)]
}

// Alive reports whether the cell at (x, y) is alive
func (g *Grid) Alive(x, y int) bool {
	return g.Get(x, y) == Alive
}

// SameShape reports whether o has the same dimensions as g.
func (g *Grid) SameShape(o *Grid) bool {
	return g.width == o.width && g.height == o.height
}

// CopyFrom overwrites g with the contents of src.
func (g *Grid) CopyFrom(src *Grid) error {
	if !g.SameShape(src) {
		return errors.Wrapf(ErrDimensionMismatch, "[Grid.CopyFrom] %dx%d into %dx%d",
			src.width, src.height, g.width, g.height)
	}
	copy(g.cells, src.cells)
	return nil
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := newGrid(g.width, g.height)
	copy(c.cells, g.cells)
	return c
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// AliveCells lists the living cells in row-major order
func (g *Grid) AliveCells() []Coord {
	alive := make([]Coord, 0, g.CountLivingCells())
	for y := range g.height {
		row := g.cells[y*g.width : (y+1)*g.width]
		for x, c := range row {
			if c == Alive {
				alive = append(alive, Coord{X: x, Y: y})
			}
		}
	}
	return alive
}

// GetGridHash returns an MD5 fingerprint of the dimensions and cell states
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
