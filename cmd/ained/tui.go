package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/neuromorph/ained/lightsout"
)

// playModel is the bubbletea model for interactive Lights-Out. Every
// accepted click goes straight to the fabric; the model holds only the
// cursor and a move counter, the board itself lives in the lattice.
type playModel struct {
	game      *lightsout.Engine
	cursorRow int
	cursorCol int
	moves     int
	failed    error
	quitting  bool
}

// Init implements tea.Model.
func (m playModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "Q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "down", "j":
		if m.cursorRow < m.game.Rows()-1 {
			m.cursorRow++
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.cursorCol < m.game.Cols()-1 {
			m.cursorCol++
		}

	case " ", "enter":
		if err := m.game.Click(m.cursorRow, m.cursorCol); err != nil {
			m.failed = err
			m.quitting = true
			return m, tea.Quit
		}
		m.moves++
		if !m.game.IsActive() {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(playTitleStyle.Render("lights out"))
	b.WriteString("\n\n")

	board := m.game.Board()
	for r := 0; r < m.game.Rows(); r++ {
		for c := 0; c < m.game.Cols(); c++ {
			cell := " · "
			style := darkCellStyle
			if board[r*m.game.Cols()+c] == 1 {
				cell = " ■ "
				style = litCellStyle
			}
			if r == m.cursorRow && c == m.cursorCol {
				style = cursorCellStyle
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(playStatusStyle.Render(fmt.Sprintf("moves: %d", m.moves)))
	b.WriteString("\n")
	b.WriteString(playHelpStyle.Render("arrows/hjkl move · space clicks · q quits"))
	b.WriteString("\n")
	return b.String()
}

var (
	playTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	litCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	darkCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cursorCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	playStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	playHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func runPlay(cmd *cobra.Command, args []string) error {
	dev, game, err := newGame()
	if err != nil {
		return err
	}
	defer dev.Close()

	model := playModel{game: game}
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	m := final.(playModel)
	if m.failed != nil {
		return m.failed
	}
	if !game.IsActive() && m.moves > 0 {
		fmt.Printf("solved in %d moves\n", m.moves)
	}
	return nil
}
