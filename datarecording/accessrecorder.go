package datarecording

import (
	"strconv"

	"github.com/sarchlab/csim/mem/cache"
	"github.com/sarchlab/csim/sim/hooking"
)

// AccessesTable is the table that holds one row per cache access.
const AccessesTable = "cache_accesses"

// accessEntry is one cache access. Addresses and tags are stored as hex text
// because SQLite integers are signed.
type accessEntry struct {
	RunID      string
	Seq        uint64
	Address    string
	SetID      int
	WayID      int
	Tag        string
	Outcome    string
	EvictedTag string
}

// AccessRecorder is a cache hook that records every access.
type AccessRecorder struct {
	recorder DataRecorder
	runID    string
	seq      uint64
}

// NewAccessRecorder creates an AccessRecorder that tags rows with runID.
func NewAccessRecorder(recorder DataRecorder, runID string) *AccessRecorder {
	recorder.CreateTable(AccessesTable, accessEntry{})

	return &AccessRecorder{
		recorder: recorder,
		runID:    runID,
	}
}

// Func records the access.
func (r *AccessRecorder) Func(ctx hooking.HookCtx) {
	if ctx.Pos != cache.HookPosAccess {
		return
	}

	d := ctx.Detail.(cache.AccessDetail)

	entry := accessEntry{
		RunID:   r.runID,
		Seq:     r.seq,
		Address: hexString(d.Address),
		SetID:   d.SetID,
		WayID:   d.WayID,
		Tag:     hexString(d.Tag),
		Outcome: d.Outcome.String(),
	}

	if d.Outcome.IsEviction() {
		entry.EvictedTag = hexString(d.EvictedTag)
	}

	r.recorder.InsertData(AccessesTable, entry)
	r.seq++
}

// NumRecorded returns how many accesses have been recorded.
func (r *AccessRecorder) NumRecorded() uint64 {
	return r.seq
}

func hexString(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}
