package commands

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/internal/logx"
	"github.com/katalvlaran/gridpath/internal/printer"
	"github.com/spf13/cobra"
)

var versionString = "dev"

// NewRootCmd builds the gridpath command tree. Each call returns a fresh
// tree with its own flag state.
func NewRootCmd() *cobra.Command {
	var (
		logLevel string
		noColor  bool
	)

	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Shortest 4-directional paths on boolean grids",
		Long: `gridpath counts the fewest up/down/left/right moves between two cells
of a grid of open and blocked tiles, using breadth-first search.

Maps use "." for open tiles, "#" for walls, "P" for the start and "Q" for
the end. Spaces between symbols are ignored.`,
		Version: versionString,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logx.ParseLevel(logLevel)
			if err != nil {
				return printer.Error(
					"Invalid log level",
					fmt.Sprintf("%q is not a known log level.", logLevel),
					[]string{"Use one of DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL"},
				)
			}
			logx.InitLogger(level)
			if noColor {
				printer.DisableColor()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is specified, show help
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "WARNING", "log level (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(newFindCmd(), newDemoCmd(), newBatchCmd())

	return root
}

// Execute runs the command tree with os.Args. Called once by main.main().
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionString = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
