package datarecording

import (
	"database/sql"
	"fmt"

	"github.com/rs/xid"

	"github.com/sarchlab/csim/mem/cache"
	"github.com/sarchlab/csim/sim/replay"
)

// RunsTable is the table that holds one row per replay.
const RunsTable = "runs"

// RunEntry is the summary of one replay.
type RunEntry struct {
	RunID            string
	TracePath        string
	Log2NumSets      uint
	WayAssociativity int
	Log2BlockSize    uint
	Hits             uint64
	Misses           uint64
	Evictions        uint64
	SkippedLines     int
}

// NewRunID returns a globally unique run identifier.
func NewRunID() string {
	return xid.New().String()
}

// MakeRunEntry collects the summary of a finished replay.
func MakeRunEntry(
	runID string,
	tracePath string,
	g cache.Geometry,
	stats replay.Statistics,
	skipped int,
) RunEntry {
	return RunEntry{
		RunID:            runID,
		TracePath:        tracePath,
		Log2NumSets:      g.Log2NumSets,
		WayAssociativity: g.WayAssociativity,
		Log2BlockSize:    g.Log2BlockSize,
		Hits:             stats.Hits,
		Misses:           stats.Misses,
		Evictions:        stats.Evictions,
		SkippedLines:     skipped,
	}
}

// RecordRun stores a run summary.
func RecordRun(r DataRecorder, entry RunEntry) {
	r.CreateTable(RunsTable, RunEntry{})
	r.InsertData(RunsTable, entry)
}

// ReadRuns loads every run summary stored in the database file, in the order
// they were recorded.
func ReadRuns(path string) ([]RunEntry, error) {
	db, err := sql.Open("sqlite3", "file:"+Filename(path)+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT RunID, TracePath, Log2NumSets,
		WayAssociativity, Log2BlockSize, Hits, Misses, Evictions, SkippedLines
		FROM ` + RunsTable + ` ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("reading runs from %s: %w", Filename(path), err)
	}
	defer rows.Close()

	var runs []RunEntry

	for rows.Next() {
		var e RunEntry

		err := rows.Scan(&e.RunID, &e.TracePath, &e.Log2NumSets,
			&e.WayAssociativity, &e.Log2BlockSize,
			&e.Hits, &e.Misses, &e.Evictions, &e.SkippedLines)
		if err != nil {
			return nil, err
		}

		runs = append(runs, e)
	}

	return runs, rows.Err()
}
