package main

import (
	"os"

	"github.com/situ2001/oh-pluralize/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.PluralCmd())
	rootCmd.AddCommand(commands.SingularCmd())
	rootCmd.AddCommand(commands.CheckCmd())
	rootCmd.AddCommand(commands.CountCmd())
	rootCmd.AddCommand(commands.DemoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
