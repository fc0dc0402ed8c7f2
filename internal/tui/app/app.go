// Package app is the top-level TUI model. It switches between the board and
// the notepad.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/qb/internal/tui/boardview"
	"github.com/Paintersrp/qb/internal/tui/notepad"
)

type rootView string

const (
	viewBoard rootView = "board"
	viewNotes rootView = "notes"
)

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)
)

type rootKeyMap struct {
	board key.Binding
	notes key.Binding
	next  key.Binding
	quit  key.Binding
}

func newRootKeyMap() rootKeyMap {
	return rootKeyMap{
		board: key.NewBinding(
			key.WithKeys("alt+1"),
			key.WithHelp("alt+1", "board"),
		),
		notes: key.NewBinding(
			key.WithKeys("alt+2"),
			key.WithHelp("alt+2", "notepad"),
		),
		next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

type RootModel struct {
	board  *boardview.Model
	notes  *notepad.Model
	active rootView
	keys   rootKeyMap
	width  int
	height int
}

func NewRootModel(board *boardview.Model, notes *notepad.Model) *RootModel {
	return &RootModel{
		board:  board,
		notes:  notes,
		active: viewBoard,
		keys:   newRootKeyMap(),
	}
}

func (m *RootModel) Init() tea.Cmd {
	return tea.Batch(m.board.Init(), m.notes.Init())
}

func (m *RootModel) Active() string { return string(m.active) }

func (m *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-1, 1)}
		m.board.Update(inner)
		m.notes.Update(inner)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		if cmd, ok := m.handleViewSwitch(msg); ok {
			return m, cmd
		}

	case tea.MouseMsg:
		// Children lay out below the tab bar.
		msg.Y--
		return m.forward(msg)
	}

	return m.forward(msg)
}

// forward routes msg to the active view. Timer messages are routed to both so
// a view keeps its own timers running while hidden.
func (m *RootModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		if m.active == viewNotes {
			_, cmd := m.notes.Update(msg)
			return m, cmd
		}
		_, cmd := m.board.Update(msg)
		return m, cmd
	}

	_, boardCmd := m.board.Update(msg)
	_, notesCmd := m.notes.Update(msg)
	return m, tea.Batch(boardCmd, notesCmd)
}

func (m *RootModel) handleViewSwitch(msg tea.KeyMsg) (tea.Cmd, bool) {
	editing := m.board.Editing() || (m.active == viewNotes && m.notes.Editing())

	switch {
	case key.Matches(msg, m.keys.board):
		return m.switchTo(viewBoard), true
	case key.Matches(msg, m.keys.notes):
		return m.switchTo(viewNotes), true
	case key.Matches(msg, m.keys.next) && !editing:
		if m.active == viewBoard {
			return m.switchTo(viewNotes), true
		}
		return m.switchTo(viewBoard), true
	}
	return nil, false
}

func (m *RootModel) switchTo(view rootView) tea.Cmd {
	if m.active == view {
		return nil
	}
	m.active = view
	if view == viewNotes {
		return m.notes.Focus()
	}
	m.notes.Blur()
	return nil
}

func (m *RootModel) View() string {
	tabs := []string{
		tab(viewBoard, m.active, "Board", m.keys.board),
		tab(viewNotes, m.active, "Notepad", m.keys.notes),
	}
	header := strings.Join(tabs, " ")

	body := m.board.View()
	if m.active == viewNotes {
		body = m.notes.View()
	}

	return padFrame(header+"\n"+body, m.width, m.height)
}

func tab(view, active rootView, label string, binding key.Binding) string {
	text := fmt.Sprintf("%s (%s)", label, binding.Help().Key)
	if view == active {
		return activeTabStyle.Render(fmt.Sprintf("[%s]", text))
	}
	return tabStyle.Render(text)
}

func padFrame(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}

	if width > 0 {
		for i, line := range lines {
			pad := width - lipgloss.Width(line)
			if pad > 0 {
				lines[i] = line + strings.Repeat(" ", pad)
			}
		}
	}

	if height > len(lines) {
		blank := ""
		if width > 0 {
			blank = strings.Repeat(" ", width)
		}
		for len(lines) < height {
			lines = append(lines, blank)
		}
	}

	return strings.Join(lines, "\n")
}
