// Package tui provides the interactive inflection demo.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/situ2001/oh-pluralize/pluralize"
)

// Lipgloss styles for the demo screen
var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// DemoModel is the BubbleTea model for the live inflection demo. The user
// types a noun and adjusts a count; the screen shows the inflected phrase
// as they type.
type DemoModel struct {
	engine *pluralize.Engine
	input  textinput.Model
	count  int
}

// NewDemo creates a demo model seeded with the given word.
func NewDemo(engine *pluralize.Engine, word string) DemoModel {
	input := textinput.New()
	input.Placeholder = "noun"
	input.SetValue(word)
	input.Focus()
	input.CharLimit = 64
	input.Width = 32

	return DemoModel{
		engine: engine,
		input:  input,
		count:  2,
	}
}

// Init starts the cursor blinking.
func (m DemoModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keyboard input. Up/down adjust the count; everything else
// goes to the text input.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "+":
			m.count++
			return m, nil

		case "down", "-":
			if m.count > 0 {
				m.count--
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the demo screen.
func (m DemoModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pluralize demo") + "\n\n")
	b.WriteString("  Word:  " + m.input.View() + "\n")
	b.WriteString(fmt.Sprintf("  Count: %d\n\n", m.count))

	word := strings.TrimSpace(m.input.Value())
	if word == "" {
		b.WriteString(mutedStyle.Render("  type a noun to inflect it") + "\n")
	} else {
		phrase := m.engine.Pluralize(word, m.count, true)
		b.WriteString("  " + resultStyle.Render(phrase))
		b.WriteString("  " + badgeStyle.Render("("+m.describe(word)+")") + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render("  [↑/↓] Adjust count    [Esc] Quit") + "\n")

	return b.String()
}

// describe classifies the typed word for the badge next to the result.
func (m DemoModel) describe(word string) string {
	plural := m.engine.IsPlural(word)
	singular := m.engine.IsSingular(word)

	switch {
	case plural && singular:
		return "uncountable"
	case plural:
		return "plural form"
	case singular:
		return "singular form"
	default:
		return "unrecognized form"
	}
}
