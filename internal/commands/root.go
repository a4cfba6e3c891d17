package commands

import (
	"github.com/spf13/cobra"

	"github.com/situ2001/oh-pluralize/internal/output"
	"github.com/situ2001/oh-pluralize/pluralize"
)

// Persistent flags shared by every subcommand.
var (
	rulesPath string
	verbose   bool
)

// RootCmd creates and returns the root command for the pluralize CLI
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pluralize",
		Short: "Pluralize and singularize English words",
		Long: `Pluralize converts English words between singular and plural forms.

It ships with the full set of built-in inflection rules and can load
custom rules from a YAML file:
• pluralize plural word...     # Inflect words to plural
• pluralize singular word...   # Inflect words to singular
• pluralize count 3 word       # Inflect for a count ("3 words")
• pluralize demo               # Interactive demo

Learn more: https://github.com/situ2001/oh-pluralize`,
		Version: pluralize.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().StringVarP(&rulesPath, "rules", "r", "", "Path to a custom rule file (YAML)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
