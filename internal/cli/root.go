package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "locky",
	Short: "A solver for the locky puzzle",
	Long: `Locky solves the locky puzzle, a Rubik's-cube variant whose stickers
carry arrows and whose faces lock in place once both arrow directions
appear on them.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(multisolveCmd)
	rootCmd.AddCommand(serveCmd)
}
