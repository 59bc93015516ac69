package commands

import (
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/printer"
	"github.com/spf13/cobra"
)

// demoMap is the reference grid: the route from P must swing around the
// wall in row 1, so the answer is 6 rather than the Manhattan 4.
const demoMap = `
. P . . .
. # # # .
. . . . .
. . Q . .
. . . . .
`

func newDemoCmd() *cobra.Command {
	var showRoute bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in 5x5 demo map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := gridmap.MustParse(demoMap)
			printer.Info("%s\n\n", m.String())
			return solve(m, showRoute)
		},
	}
	cmd.Flags().BoolVar(&showRoute, "route", false, "also print the cells of one shortest route")

	return cmd
}
