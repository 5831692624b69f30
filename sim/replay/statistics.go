package replay

import (
	"fmt"

	"github.com/sarchlab/csim/mem/cache"
)

// Statistics are the aggregate counts of a replay.
type Statistics struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Add counts one access outcome.
func (s *Statistics) Add(o cache.Outcome) {
	switch o {
	case cache.Hit:
		s.Hits++
	case cache.MissNoEvict:
		s.Misses++
	case cache.MissWithEvict:
		s.Misses++
		s.Evictions++
	}
}

// NumAccesses returns the number of accesses counted.
func (s Statistics) NumAccesses() uint64 {
	return s.Hits + s.Misses
}

func (s Statistics) String() string {
	return fmt.Sprintf("hits:%d misses:%d evictions:%d",
		s.Hits, s.Misses, s.Evictions)
}
