package commands

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/situ2001/oh-pluralize/internal/output"
	"github.com/situ2001/oh-pluralize/internal/tui"
)

// DemoCmd creates the demo command
func DemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [word]",
		Short: "Interactive inflection demo",
		Long: `Opens an interactive demo: type a noun, adjust the count with the
arrow keys, and watch the inflected phrase update live.

Examples:
  pluralize demo
  pluralize demo goose`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			engine, err := loadEngine()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			word := "goose"
			if len(args) > 0 {
				word = args[0]
			}

			p := tea.NewProgram(tui.NewDemo(engine, word))
			if _, err := p.Run(); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}
}
