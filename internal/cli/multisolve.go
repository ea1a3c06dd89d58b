package cli

import (
	"fmt"

	"github.com/ehrlich-b/locky/internal/puzzle"
	"github.com/ehrlich-b/locky/internal/solver"
	"github.com/spf13/cobra"
)

var multisolveCmd = &cobra.Command{
	Use:   "multisolve [scramble]",
	Short: "Solve a scrambled locky puzzle with the multi-stage solver",
	Long: `Solve a scrambled locky puzzle by chaining the five restricted
projection-goal searches: lock the arrow edges, restore corner
orientation relative to each axis, and finish with a full solve bounded
by the combined heuristic. Prints each stage's sub-solution.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")

		scramble, err := puzzle.ParseAlgo(args[0])
		if err != nil {
			fail(headless, "Error parsing scramble: %v\n", err)
		}
		state := scramble.State()

		if !headless {
			fmt.Printf("Solving scramble: %s\n", scramble)
		}

		ms := solver.NewMultiStage()
		result, err := ms.Solve(&state)
		if err != nil {
			fail(headless, "Error solving puzzle: %v\n", err)
		}

		if headless {
			fmt.Print(result.Algo.String())
			return
		}

		fmt.Printf("Solution: %s\n", result.Algo.String())
		fmt.Printf("Moves: %d\n", len(result.Algo))
		for i, stage := range result.Stages {
			fmt.Printf("  Stage %d: %s\n", i+1, stage.String())
		}
	},
}

func init() {
	multisolveCmd.Flags().Bool("headless", false, "Output only the space-separated solution moves")
}
