package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/locky/internal/heuristic"
	"github.com/ehrlich-b/locky/internal/puzzle"
	"github.com/ehrlich-b/locky/internal/solver"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled locky puzzle with a single full-state IDA* search",
	Long: `Solve a scrambled locky puzzle by iterating full-state IDA* at
increasing depth bounds, up to --max-depth. For scrambles too deep to search directly,
use "multisolve" instead.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		scramble, err := puzzle.ParseAlgo(args[0])
		if err != nil {
			fail(headless, "Error parsing scramble: %v\n", err)
		}
		state := scramble.State()

		if !headless {
			fmt.Printf("Solving scramble: %s\n", scramble)
		}

		tables := heuristic.BuildDefaultTables()
		h := heuristic.Max{tables.Arrow, tables.Corner}

		for depth := 0; depth <= maxDepth; depth++ {
			algo, ok := solver.Solve(&state, h, uint8(depth))
			if !ok {
				continue
			}
			if headless {
				fmt.Print(algo.String())
				return
			}
			fmt.Printf("Solution: %s\n", algo.String())
			fmt.Printf("Moves: %d\n", len(algo))
			return
		}

		fail(headless, "No solution found within depth %d\n", maxDepth)
	},
}

func fail(headless bool, format string, args ...any) {
	if !headless {
		fmt.Printf(format, args...)
	}
	os.Exit(1)
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output only the space-separated solution moves")
	solveCmd.Flags().Int("max-depth", 16, "Maximum search depth to try before giving up")
}
