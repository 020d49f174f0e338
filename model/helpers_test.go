package model

import (
	"testing"

	"github.com/sheikhrachel/go-life/rules"
)

func mustGrid(t *testing.T, s string) *Grid {
	t.Helper()
	g, err := ParseGrid(s)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func mustStep(t *testing.T, g *Grid, rule rules.Rule, topo rules.Topology) (*Grid, []Coord) {
	t.Helper()
	next, alive, err := Step(g, rule, topo, nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return next, alive
}

func assertGrid(t *testing.T, got *Grid, want string) {
	t.Helper()
	w := mustGrid(t, want)
	if got.String() != w.String() {
		t.Fatalf("grid mismatch\n got:\n%s want:\n%s", got, w)
	}
}

func assertCoords(t *testing.T, got, want []Coord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("alive = %v, expected %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("alive = %v, expected %v", got, want)
		}
	}
}

func randomGrid(t *testing.T, w, h int, seed int64) *Grid {
	t.Helper()
	g, err := Initialize(w, h, Random, NewRNG(seed))
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return g
}
