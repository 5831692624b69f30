// Package replay drives a cache with the records of a memory trace.
package replay

import (
	"github.com/sarchlab/csim/mem/cache"
	"github.com/sarchlab/csim/mem/trace"
	"github.com/sarchlab/csim/sim/hooking"
)

// HookPosRecordReplayed marks the point after all accesses of a record have
// been applied. Records of kind Other do not trigger it.
var HookPosRecordReplayed = &hooking.HookPos{Name: "RecordReplayed"}

// RecordDetail is the Detail of hooks at HookPosRecordReplayed. Outcomes is
// reused by the next record; hooks must copy it to keep it.
type RecordDetail struct {
	Outcomes []cache.Outcome
}

// A Replayer feeds trace records into a cache and counts the outcomes.
type Replayer struct {
	hooking.HookableBase

	cache cache.Accessor
	stats Statistics

	outcomes [2]cache.Outcome
}

// NewReplayer creates a Replayer that accesses c.
func NewReplayer(c cache.Accessor) *Replayer {
	return &Replayer{cache: c}
}

// Replay consumes src to the end and returns the totals so far.
func (r *Replayer) Replay(src trace.Source) Statistics {
	for {
		rec, ok := src.Next()
		if !ok {
			break
		}

		r.ReplayRecord(rec)
	}

	return r.stats
}

// ReplayRecord applies one record: loads and stores access the cache once,
// modifies twice, and anything else is ignored.
func (r *Replayer) ReplayRecord(rec trace.Record) {
	n := rec.Op.NumAccesses()
	if n == 0 {
		return
	}

	for i := 0; i < n; i++ {
		r.outcomes[i] = r.cache.Access(rec.Address)
		r.stats.Add(r.outcomes[i])
	}

	if r.NumHooks() == 0 {
		return
	}

	r.InvokeHook(hooking.HookCtx{
		Domain: r,
		Pos:    HookPosRecordReplayed,
		Item:   rec,
		Detail: RecordDetail{Outcomes: r.outcomes[:n]},
	})
}

// Statistics returns the counts accumulated so far.
func (r *Replayer) Statistics() Statistics {
	return r.stats
}
