package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedRule is returned when a rule string is not of the form "b<digits>/s<digits>".
	ErrMalformedRule = errors.New("malformed rule")
	// ErrRuleRange is returned when a rule names a neighbour count its topology cannot produce.
	ErrRuleRange = errors.New("rule count out of range")
)

const (
	ruleSeparator = "/"
	birthPrefix   = 'b'
	survivePrefix = 's'
	maxCount      = mooreNeighbors
)

// CountSet is a set of neighbour counts in the range 0-8, stored as a bitmask.
type CountSet uint16

// NewCountSet builds a set from the given counts, ignoring values outside 0-8.
func NewCountSet(counts ...int) CountSet {
	var s CountSet
	for _, n := range counts {
		s = s.Add(n)
	}
	return s
}

// Add returns s with n included.
func (s CountSet) Add(n int) CountSet {
	if n < 0 || n > maxCount {
		return s
	}
	return s | 1<<uint(n)
}

// Has reports whether n is in the set.
func (s CountSet) Has(n int) bool {
	if n < 0 || n > maxCount {
		return false
	}
	return s&(1<<uint(n)) != 0
}

// Counts returns the members in ascending order.
func (s CountSet) Counts() []int {
	counts := make([]int, 0, maxCount+1)
	for n := 0; n <= maxCount; n++ {
		if s.Has(n) {
			counts = append(counts, n)
		}
	}
	return counts
}

// Max returns the largest member, or -1 for the empty set.
func (s CountSet) Max() int {
	for n := maxCount; n >= 0; n-- {
		if s.Has(n) {
			return n
		}
	}
	return -1
}

func (s CountSet) String() string {
	var sb strings.Builder
	for _, n := range s.Counts() {
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// Rule is a birth/survival rule: a dead cell with a neighbour count in Birth becomes alive,
// a live cell with a count in Survive stays alive, every other cell is dead.
type Rule struct {
	Birth   CountSet
	Survive CountSet
}

// ParseRule parses the canonical "b<digits>/s<digits>" form, e.g. "b3/s23".
// Prefixes are case-insensitive and either digit group may be empty ("b2/s").
func ParseRule(s string) (Rule, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	parts := strings.Split(raw, ruleSeparator)
	if len(parts) != 2 {
		return Rule{}, errors.Wrapf(ErrMalformedRule, "[ParseRule] %q: expected one %q separator", s, ruleSeparator)
	}

	birth, err := parseCounts(parts[0], birthPrefix)
	if err != nil {
		return Rule{}, errors.Wrapf(err, "[ParseRule] %q: birth half", s)
	}
	survive, err := parseCounts(parts[1], survivePrefix)
	if err != nil {
		return Rule{}, errors.Wrapf(err, "[ParseRule] %q: survive half", s)
	}

	return Rule{Birth: birth, Survive: survive}, nil
}

// MustParseRule is like ParseRule but panics on error. Intended for package-level presets.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseCounts(half string, prefix byte) (CountSet, error) {
	if len(half) == 0 || half[0] != prefix {
		return 0, errors.Wrapf(ErrMalformedRule, "missing %q prefix", string(prefix))
	}

	var set CountSet
	for _, r := range half[1:] {
		if r < '0' || r > '9' {
			return 0, errors.Wrapf(ErrMalformedRule, "non-digit %q", r)
		}
		n := int(r - '0')
		if n > maxCount {
			return 0, errors.Wrapf(ErrRuleRange, "count %d exceeds %d", n, maxCount)
		}
		if set.Has(n) {
			return 0, errors.Wrapf(ErrMalformedRule, "duplicate count %d", n)
		}
		set = set.Add(n)
	}
	return set, nil
}

// String returns the canonical lower-case form with ascending digits.
func (r Rule) String() string {
	return string(birthPrefix) + r.Birth.String() + ruleSeparator + string(survivePrefix) + r.Survive.String()
}

// ValidFor checks that every count in r can be produced under t.
func (r Rule) ValidFor(t Topology) error {
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "[Rule.ValidFor]")
	}
	limit := t.MaxNeighbors()
	if r.Birth.Max() > limit || r.Survive.Max() > limit {
		return errors.Wrapf(ErrRuleRange, "[Rule.ValidFor] rule %s exceeds %d neighbours of %s", r, limit, t)
	}
	return nil
}

// Apply returns the next state of a cell given its current state and live neighbour count.
func (r Rule) Apply(neighbors int, alive bool) bool {
	if alive {
		return r.Survive.Has(neighbors)
	}
	return r.Birth.Has(neighbors)
}

// BirthsFromNothing reports whether a dead cell with no live neighbours is born.
// Such rules can create cells anywhere on the grid.
func (r Rule) BirthsFromNothing() bool {
	return r.Birth.Has(0)
}
