package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/situ2001/oh-pluralize/internal/output"
)

// CountCmd creates the count command
func CountCmd() *cobra.Command {
	var bare bool

	cmd := &cobra.Command{
		Use:   "count <n> <word>",
		Short: "Inflect a word for a count",
		Long: `Inflects a word for the given count and prints the phrase.

Examples:
  pluralize count 1 goose         # 1 goose
  pluralize count 3 goose         # 3 geese
  pluralize count 3 goose --bare  # geese`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				output.Error(fmt.Sprintf("Count must be an integer, got %q", args[0]))
				os.Exit(1)
			}

			engine, err := loadEngine()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			fmt.Println(engine.Pluralize(args[1], count, !bare))
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "Print the word without the count prefix")

	return cmd
}
