package tagging

// A VictimFinder decides which line of a set should be replaced.
type VictimFinder interface {
	FindVictim(lines []Line) (wayID int)
}

// LRUVictimFinder evicts the least recently used line.
type LRUVictimFinder struct {
}

// NewLRUVictimFinder returns a newly constructed lru evictor
func NewLRUVictimFinder() *LRUVictimFinder {
	e := new(LRUVictimFinder)
	return e
}

// FindVictim returns the way with the smallest LastUsed stamp. Ties go to the
// lowest way, so empty lines are filled from way 0 upward before any valid
// line is evicted.
func (e *LRUVictimFinder) FindVictim(lines []Line) (wayID int) {
	for i := 1; i < len(lines); i++ {
		if lines[i].LastUsed < lines[wayID].LastUsed {
			wayID = i
		}
	}

	return wayID
}
