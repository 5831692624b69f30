package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sarchlab/csim/mem/cache"
	"github.com/sarchlab/csim/sim/hooking"
	"github.com/sarchlab/csim/sim/replay"
)

// SetCounter is a cache hook that keeps hit, miss and eviction counts for each
// set, which shows whether conflict misses concentrate on a few sets.
type SetCounter struct {
	sets []replay.Statistics
}

// NewSetCounter creates a SetCounter for a cache with numSets sets.
func NewSetCounter(numSets int) *SetCounter {
	return &SetCounter{
		sets: make([]replay.Statistics, numSets),
	}
}

// Func counts one access.
func (c *SetCounter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != cache.HookPosAccess {
		return
	}

	d := ctx.Detail.(cache.AccessDetail)
	c.sets[d.SetID].Add(d.Outcome)
}

// Set returns the counts of one set.
func (c *SetCounter) Set(setID int) replay.Statistics {
	return c.sets[setID]
}

// Print writes one row per set that was accessed at least once.
func (c *SetCounter) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "set\thits\tmisses\tevictions\t")

	for setID, s := range c.sets {
		if s.NumAccesses() == 0 {
			continue
		}

		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t\n",
			setID, s.Hits, s.Misses, s.Evictions)
	}

	return tw.Flush()
}
