package model

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// span is a half-open index range [start, end).
type span struct {
	start, end int
}

func (s span) len() int {
	return s.end - s.start
}

// Step computes the generation after current without modifying it. The next grid
// comes from pool when one is given; callers hand the retired grid back with GridToPool.
// The alive cells of the new generation are returned in row-major order.
func Step(current *Grid, rule rules.Rule, t rules.Topology, pool *GridPool) (*Grid, []Coord, error) {
	if err := t.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "[Step] refusing to scan")
	}

	var next *Grid
	if pool != nil {
		next = pool.Get(current.width, current.height)
	} else {
		next = newGrid(current.width, current.height)
	}

	alive := stepRows(current, next, rule, offsetsFor(t),
		span{0, current.height}, span{0, current.width}, nil)
	return next, alive, nil
}

// stepRows writes the next state of every cell in rows x cols into next, reading only
// current, and appends the cells that end up alive to alive in row-major order.
func stepRows(current, next *Grid, rule rules.Rule, offsets []offset, rows, cols span, alive []Coord) []Coord {
	w := current.width
	for y := rows.start; y < rows.end; y++ {
		for x := cols.start; x < cols.end; x++ {
			idx := y*w + x
			neighbors := countNeighbors(current, y, x, offsets)
			if rule.Apply(neighbors, current.cells[idx] == Alive) {
				next.cells[idx] = Alive
				alive = append(alive, Coord{X: x, Y: y})
			} else {
				next.cells[idx] = Dead
			}
		}
	}
	return alive
}

// stepRowsParallel splits rows into contiguous bands, one goroutine per band. Each band
// reads the frozen current grid and writes only its own rows of next, so the result is
// identical to stepRows. Band outputs are joined in band order to keep row-major order.
func stepRowsParallel(current, next *Grid, rule rules.Rule, offsets []offset, rows, cols span, workers int) ([]Coord, error) {
	var (
		eg            errgroup.Group
		rowsPerWorker = (rows.len() + workers - 1) / workers // Ceiling division
		bands         = make([][]Coord, workers)
	)

	for i := range workers {
		var (
			startRow = rows.start + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows.end)
		)
		if startRow >= rows.end {
			break
		}

		eg.Go(func() error {
			bands[i] = stepRows(current, next, rule, offsets, span{startRow, endRow}, cols, nil)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[stepRowsParallel] band failed")
	}

	total := 0
	for _, b := range bands {
		total += len(b)
	}
	alive := make([]Coord, 0, total)
	for _, b := range bands {
		alive = append(alive, b...)
	}
	return alive, nil
}
