package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sarchlab/csim/datarecording"
)

const runsUsageTemplate = `Usage: {{.CommandPath}} <name>...

Lists the runs recorded with --record <name>.
`

func newRunsCmd() *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs <name>...",
		Short: "List runs recorded with --record.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tTRACE\tS\tE\tB\tHITS\tMISSES\tEVICTIONS\tSKIPPED")

			for _, name := range args {
				runs, err := datarecording.ReadRuns(name)
				if err != nil {
					return err
				}

				for _, r := range runs {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
						r.RunID, r.TracePath,
						r.Log2NumSets, r.WayAssociativity, r.Log2BlockSize,
						r.Hits, r.Misses, r.Evictions, r.SkippedLines)
				}
			}

			return w.Flush()
		},
	}

	runsCmd.SetUsageTemplate(runsUsageTemplate)

	return runsCmd
}
