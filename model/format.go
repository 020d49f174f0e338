package model

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = '#'
	gridPosDead  = '.'
)

// String renders the grid one row per line, '#' for alive and '.' for dead.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[g.index(x, y)] == Alive {
				sb.WriteByte(gridPosAlive)
			} else {
				sb.WriteByte(gridPosDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid builds a grid from the String form. Blank lines and surrounding
// whitespace are ignored; every remaining row must have the same width.
func ParseGrid(s string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[ParseGrid] no rows")
	}

	g := newGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, errors.Wrapf(ErrDimensionMismatch, "[ParseGrid] row %d has width %d, expected %d", y, len(row), g.width)
		}
		for x := range len(row) {
			switch row[x] {
			case gridPosAlive:
				g.cells[g.index(x, y)] = Alive
			case gridPosDead:
			default:
				return nil, errors.Errorf("[ParseGrid] unexpected %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	return g, nil
}
