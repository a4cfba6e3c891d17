package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/situ2001/oh-pluralize/internal/output"
)

// SingularCmd creates the singular command
func SingularCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "singular word...",
		Short: "Convert words to their singular form",
		Long: `Converts each word to its singular form, one per line.

Examples:
  pluralize singular geese        # goose
  pluralize singular buses knives # bus, knife`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			engine, err := loadEngine()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			for _, word := range args {
				fmt.Println(engine.Singular(word))
			}
		},
	}
}
