package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/logx"
	"github.com/katalvlaran/gridpath/internal/printer"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/spf13/cobra"
)

func newFindCmd() *cobra.Command {
	var (
		mapText   string
		mapFile   string
		showRoute bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the shortest path on a map",
		Long: `Find the fewest moves from P to Q on a map given inline or in a file.

Examples:
  gridpath find --map ".P..
.##.
..Q."
  gridpath find --map-file maze.txt --route`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readMap(mapText, mapFile)
			if err != nil {
				return err
			}
			m, err := gridmap.Parse(text)
			if err != nil {
				return printer.Error("Invalid map", err.Error(), []string{
					`Maps may only contain "P", "Q", "#", "." and spaces`,
				})
			}
			return solve(m, showRoute)
		},
	}

	cmd.Flags().StringVar(&mapText, "map", "", "map text")
	cmd.Flags().StringVar(&mapFile, "map-file", "", "path to a file holding the map text")
	cmd.Flags().BoolVar(&showRoute, "route", false, "also print the cells of one shortest route")
	cmd.MarkFlagsMutuallyExclusive("map", "map-file")
	cmd.MarkFlagsOneRequired("map", "map-file")

	return cmd
}

func readMap(text, path string) (string, error) {
	if path == "" {
		return text, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", printer.Error("Cannot read map file", err.Error(), nil)
	}
	return string(data), nil
}

// solve prints the move count of m and, when asked, one shortest route.
func solve(m *gridmap.Map, showRoute bool) error {
	logx.Log.Debugf("solving %d-row map from %v to %v", len(m.Grid), m.Start, m.End)

	pf := pathfind.New()
	moves, err := pf.PathFind(m.Grid, m.Start, m.End)
	if err != nil {
		return reportInputError(err)
	}
	if moves == -1 {
		printer.Warning("Unable to find a path\n")
		return nil
	}
	printer.Success("Shortest path is %d moves.\n", moves)

	if showRoute {
		route, err := pf.Route(m.Grid, m.Start, m.End)
		if err != nil {
			return reportInputError(err)
		}
		printer.Highlight("%s\n", formatRoute(route))
	}

	return nil
}

func reportInputError(err error) error {
	var ie *pathfind.InputError
	if errors.As(err, &ie) {
		return printer.Error("Invalid input", ie.Message, nil)
	}
	return printer.Error("Path finding failed", err.Error(), nil)
}

func formatRoute(route []pathfind.Coord) string {
	parts := make([]string, len(route))
	for i, c := range route {
		parts[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return strings.Join(parts, " → ")
}
