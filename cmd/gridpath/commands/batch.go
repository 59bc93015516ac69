package commands

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/logx"
	"github.com/katalvlaran/gridpath/internal/printer"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch <scenarios.yaml>",
		Short: "Solve every scenario of a YAML file",
		Long: `Solve every scenario of a YAML scenario file concurrently and print
a result table. Scenarios with an "expect" value are checked; the command
fails if any of them disagrees.

Example file:

  scenarios:
    - name: demo
      map: |
        . P . . .
        . # # # .
        . . Q . .
      expect: 5
    - name: raw
      grid: [[true, true], [true, true]]
      start: [0, 0]
      end: [1, 1]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := gridmap.LoadScenarioFile(args[0])
			if err != nil {
				return printer.Error("Invalid scenario file", err.Error(), nil)
			}
			queries, err := gridmap.Queries(scenarios)
			if err != nil {
				return printer.Error("Invalid scenario file", err.Error(), nil)
			}
			logx.Log.Infof("solving %d scenarios from %s", len(queries), args[0])

			results, err := pathfind.FindAll(cmd.Context(), queries, pathfind.WithConcurrency(concurrency))
			if err != nil {
				return printer.Error("Batch aborted", err.Error(), nil)
			}

			table, mismatches := renderResults(scenarios, results)
			printer.Info("%s", table)
			if mismatches > 0 {
				return printer.Error(
					fmt.Sprintf("%d scenario(s) did not match their expected distance", mismatches),
					"See the FAIL rows above.", nil)
			}
			printer.Success("%d scenario(s) solved\n", len(results))
			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "maximum scenarios solved at once (0 = GOMAXPROCS)")

	return cmd
}

// renderResults formats one row per scenario and counts expectation failures.
func renderResults(scenarios []gridmap.Scenario, results []pathfind.Result) (string, int) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMOVES\tEXPECT\tSTATUS")

	mismatches := 0
	for i, res := range results {
		moves := fmt.Sprint(res.Distance)
		if res.Err != nil {
			moves = res.Err.Error()
		}
		expect, status := "-", "ok"
		if e := scenarios[i].Expect; e != nil {
			expect = fmt.Sprint(*e)
			if res.Err != nil || res.Distance != *e {
				status = "FAIL"
				mismatches++
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.Name, moves, expect, status)
	}
	w.Flush()

	return buf.String(), mismatches
}
