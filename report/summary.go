// Package report renders the results of a replay.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/csim/sim/replay"
)

// PrintSummary writes the one-line summary of a replay.
func PrintSummary(w io.Writer, stats replay.Statistics) error {
	_, err := fmt.Fprintf(w, "%s\n", stats)
	return err
}

// WriteResultsFile stores the three counts, space separated, in the file at
// path, replacing whatever was there.
func WriteResultsFile(path string, stats replay.Statistics) error {
	content := fmt.Sprintf("%d %d %d\n", stats.Hits, stats.Misses, stats.Evictions)

	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		return fmt.Errorf("writing results file: %w", err)
	}

	return nil
}
