package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/situ2001/oh-pluralize/internal/output"
)

// CheckCmd creates the check command
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check word...",
		Short: "Report whether words are singular or plural",
		Long: `Reports for each word whether the engine considers it singular,
plural, or both (uncountable words are both).

Examples:
  pluralize check goose geese fish`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			engine, err := loadEngine()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			for _, word := range args {
				plural := engine.IsPlural(word)
				singular := engine.IsSingular(word)

				var status string
				switch {
				case plural && singular:
					status = "uncountable"
				case plural:
					status = "plural"
				case singular:
					status = "singular"
				default:
					status = "unrecognized"
				}

				fmt.Printf("%s: %s\n", word, status)
			}
		},
	}
}
