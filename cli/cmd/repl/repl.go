// Package repl implements the interactive rewrite loop.
package repl

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/subst/log"
	"github.com/ardnew/subst/rewrite"
	"github.com/ardnew/subst/tree"
)

const prompt = "subst> "

//nolint:gochecknoglobals
var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// entry is one evaluated input line and its rendered result.
type entry struct {
	input  string
	output string
	failed bool
}

type model struct {
	input   textinput.Model
	engine  *rewrite.Engine
	cfg     rewrite.Config
	history []entry
}

func newModel(cfg rewrite.Config, logger log.Logger) model {
	ti := textinput.New()
	ti.Placeholder = `process.env.NODE_ENV === "production"`
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()

	return model{
		input:  ti,
		engine: rewrite.New(rewrite.WithLogger(logger)),
		cfg:    cfg,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.history = append(m.history, m.evaluate(line))
			}

			m.input.SetValue("")

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// evaluate parses and rewrites a single input line.
func (m model) evaluate(line string) entry {
	file, err := tree.Parse(line)
	if err != nil {
		return entry{input: line, output: err.Error(), failed: true}
	}

	m.engine.File(file, m.cfg)

	return entry{
		input:  line,
		output: strings.TrimRight(tree.Format(file), "\n"),
	}
}

func (m model) View() string {
	var b strings.Builder

	for _, e := range m.history {
		b.WriteString(promptStyle.Render(prompt) + e.input + "\n")

		style := outputStyle
		if e.failed {
			style = errorStyle
		}

		b.WriteString(style.Render(e.output) + "\n")
	}

	b.WriteString(m.input.View() + "\n")
	b.WriteString(helpStyle.Render("enter: rewrite • esc: quit"))

	return b.String()
}

// Run starts the interactive loop and blocks until the user quits.
func Run(ctx context.Context, cfg rewrite.Config, logger log.Logger) error {
	program := tea.NewProgram(
		newModel(cfg, logger),
		tea.WithContext(ctx),
	)

	_, err := program.Run()

	return err
}
