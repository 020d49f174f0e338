package model

const (
	historySize    = 5
	stagnantWindow = 3
)

// History keeps the fingerprints of recent generations to detect still lifes and
// short oscillators.
type History struct {
	hashes []string
}

// Record adds a fingerprint and keeps only the most recent ones
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded fingerprint
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded fingerprints
func (h *History) Len() int {
	return len(h.hashes)
}

// Stagnant reports whether hash repeats one of the last three recorded states,
// i.e. the board is static or cycling with a period of at most three.
func (h *History) Stagnant(hash string) bool {
	n := len(h.hashes)
	for i := 1; i <= stagnantWindow && i <= n; i++ {
		if h.hashes[n-i] == hash {
			return true
		}
	}
	return false
}
