package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ehrlich-b/locky/internal/puzzle"
	"github.com/spf13/cobra"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long:  `Generate a random sequence of legal moves, skipping locked faces.`,
	Run: func(cmd *cobra.Command, args []string) {
		moves, _ := cmd.Flags().GetInt("moves")
		seed, _ := cmd.Flags().GetInt64("seed")
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		algo, err := puzzle.Scramble(moves, rand.New(rand.NewSource(seed)))
		if err != nil {
			fmt.Printf("Error generating scramble: %v\n", err)
			return
		}
		fmt.Println(algo.String())
	},
}

func init() {
	scrambleCmd.Flags().IntP("moves", "n", 25, "Number of moves in the scramble")
	scrambleCmd.Flags().Int64P("seed", "s", 0, "Random seed (0 picks one from the clock)")
}
