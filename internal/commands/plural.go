package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/situ2001/oh-pluralize/internal/output"
)

// PluralCmd creates the plural command
func PluralCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plural word...",
		Short: "Convert words to their plural form",
		Long: `Converts each word to its plural form, one per line.

Examples:
  pluralize plural goose          # geese
  pluralize plural bus knife      # buses, knives`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			engine, err := loadEngine()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			for _, word := range args {
				fmt.Println(engine.Plural(word))
			}
		},
	}
}
