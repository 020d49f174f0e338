package model

import "github.com/sheikhrachel/go-life/rules"

// offset is half of a mirrored neighbour pair; the other half is its negation.
type offset struct {
	dRow, dCol int
}

var (
	mooreOffsets   = []offset{{-1, 1}, {0, 1}, {1, 1}, {1, 0}}
	neumannOffsets = []offset{{1, 0}, {0, 1}}
)

func offsetsFor(t rules.Topology) []offset {
	switch t {
	case rules.Moore:
		return mooreOffsets
	case rules.VonNeumann:
		return neumannOffsets
	}
	return nil
}

// CountNeighbors counts the live neighbours of (row, col) under topology t.
// Positions off the board count as dead; there is no wraparound.
func CountNeighbors(g *Grid, row, col int, t rules.Topology) int {
	return countNeighbors(g, row, col, offsetsFor(t))
}

func countNeighbors(g *Grid, row, col int, offsets []offset) int {
	count := 0
	for _, o := range offsets {
		if r, c := row+o.dRow, col+o.dCol; r >= 0 && r < g.height && c >= 0 && c < g.width {
			count += int(g.cells[r*g.width+c])
		}
		if r, c := row-o.dRow, col-o.dCol; r >= 0 && r < g.height && c >= 0 && c < g.width {
			count += int(g.cells[r*g.width+c])
		}
	}
	return count
}
