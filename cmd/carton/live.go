package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"carton"
)

var liveFooterStyle = lipgloss.NewStyle().Faint(true)

// liveModel re-renders a tree every time the terminal is resized, which
// exercises the width-driven re-render path interactively.
type liveModel struct {
	tree  carton.Node
	width int
}

func (m liveModel) Init() tea.Cmd {
	return nil
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m liveModel) View() string {
	out := carton.NewRoot(m.tree, carton.WithWidth(m.width)).Render()
	return out + "\n" + liveFooterStyle.Render("resize the terminal to relayout · q to quit")
}

func newLiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "live [file.toml]",
		Short: "Preview a layout, re-rendering on terminal resize",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := demoTree()
			if len(args) == 1 {
				node, err := carton.LoadDocument(args[0])
				if err != nil {
					return err
				}
				tree = node
			}
			logger.Debug("starting live preview")
			_, err := tea.NewProgram(liveModel{tree: tree}).Run()
			return err
		},
	}
}
