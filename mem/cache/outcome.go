package cache

// Outcome is the result of a single cache access.
type Outcome int

// All possible outcomes of an access.
const (
	Hit Outcome = iota
	MissNoEvict
	MissWithEvict
)

// IsHit returns true if the block was already in the cache.
func (o Outcome) IsHit() bool {
	return o == Hit
}

// IsMiss returns true if the block had to be brought in.
func (o Outcome) IsMiss() bool {
	return o == MissNoEvict || o == MissWithEvict
}

// IsEviction returns true if bringing the block in displaced a valid line.
func (o Outcome) IsEviction() bool {
	return o == MissWithEvict
}

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case MissNoEvict:
		return "miss"
	case MissWithEvict:
		return "miss eviction"
	default:
		return "unknown"
	}
}
