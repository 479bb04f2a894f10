// Package debugger implements the interactive step debugger: a
// bubbletea TUI that renders the program grid, the instruction
// pointers, a neighborhood of the memory grid around the memory
// pointer, and the instruction about to run, then blocks for a single
// s(tep) / c(ontinue) / q(uit) keypress.
package debugger

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"hexagony/engine"
)

// memoryRadius is how many rings around the memory pointer are drawn.
const memoryRadius = 4

// TUI is an engine.Debugger backed by a bubbletea program. A fresh
// nested tea.Program is run for each break; its View renders the
// engine.Snapshot handed to Prompt, and its Update quits as soon as the
// user presses s, c, or q.
type TUI struct {
	err error
}

type model struct {
	snap engine.Snapshot
	cmd  engine.Command
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "s":
		m.cmd = engine.Step
		return m, tea.Quit
	case "c":
		m.cmd = engine.Continue
		return m, tea.Quit
	case "q", "ctrl+c":
		m.cmd = engine.Quit
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			renderProgram(m.snap),
			"  ",
			renderIPs(m.snap),
		),
		"",
		renderMemory(m.snap, memoryRadius),
		"",
		renderStatus(m.snap),
		"",
		"[s]tep  [c]ontinue  [q]uit",
		"",
		spew.Sdump(m.snap.MP),
	)
}

// Prompt renders snap and blocks until the user picks a command.
func (t *TUI) Prompt(snap engine.Snapshot) engine.Command {
	p := tea.NewProgram(model{snap: snap})
	final, err := p.Run()
	if err != nil {
		t.err = err
		return engine.Quit
	}
	return final.(model).cmd
}

// Err returns the last error a nested tea.Program reported, if any.
func (t *TUI) Err() error { return t.err }
