package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownTopology is returned for any value outside {Moore, VonNeumann}.
var ErrUnknownTopology = errors.New("unknown topology")

// Topology selects which neighbouring cells are counted for a cell.
type Topology uint8

const (
	// Moore counts the 8 surrounding cells, diagonals included.
	Moore Topology = iota
	// VonNeumann counts the 4 axis-aligned cells.
	VonNeumann
)

const (
	mooreNeighbors      = 8
	vonNeumannNeighbors = 4
)

// ParseTopology converts a user supplied name into a Topology
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "moore":
		return Moore, nil
	case "neumann", "vonneumann", "von-neumann", "von_neumann":
		return VonNeumann, nil
	}
	return 0, errors.Wrapf(ErrUnknownTopology, "[ParseTopology] %q", s)
}

// Valid reports whether t is one of the declared topologies.
func (t Topology) Valid() bool {
	return t == Moore || t == VonNeumann
}

// Validate returns a wrapped ErrUnknownTopology when t is not valid.
func (t Topology) Validate() error {
	if !t.Valid() {
		return errors.Wrapf(ErrUnknownTopology, "[Topology.Validate] value %d", uint8(t))
	}
	return nil
}

// MaxNeighbors returns the size of the neighbourhood, 0 for an unknown topology.
func (t Topology) MaxNeighbors() int {
	switch t {
	case Moore:
		return mooreNeighbors
	case VonNeumann:
		return vonNeumannNeighbors
	}
	return 0
}

func (t Topology) String() string {
	switch t {
	case Moore:
		return "Moore"
	case VonNeumann:
		return "Neumann"
	}
	return "Topology(" + strconv.Itoa(int(t)) + ")"
}
