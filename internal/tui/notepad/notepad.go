// Package notepad is the free-text scratch pad shown next to the board. Its
// text is saved on every change.
package notepad

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/qb/internal/config"
	"github.com/Paintersrp/qb/internal/notes"
	"github.com/Paintersrp/qb/internal/tui/hover"
)

const (
	buttonCopy  = "copy"
	buttonClear = "clear"
	flagCopied  = "copied"
)

type Model struct {
	buffer    *notes.Buffer
	textarea  textarea.Model
	keys      keyMap
	help      help.Model
	buttons   *hover.Buttons
	expiry    *hover.Expiry
	zones     hover.Map
	copiedTTL time.Duration

	copied bool
	err    string
	width  int
	height int
}

func New(buffer *notes.Buffer, cfg *config.Config) *Model {
	ta := textarea.New()
	ta.Placeholder = "Jot down notes, ideas or answers to follow up on..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetValue(buffer.Text())

	return &Model{
		buffer:    buffer,
		textarea:  ta,
		keys:      newKeyMap(),
		help:      help.New(),
		buttons:   hover.NewButtons(cfg.HoverDelay),
		expiry:    hover.NewExpiry(),
		copiedTTL: cfg.CopiedTTL,
	}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Focus() tea.Cmd {
	return m.textarea.Focus()
}

func (m *Model) Blur() {
	m.textarea.Blur()
	m.buttons.Reset()
}

// Editing reports whether key presses go to the text area.
func (m *Model) Editing() bool {
	return m.textarea.Focused()
}

func (m *Model) Copied() bool { return m.copied }

func (m *Model) Text() string { return m.buffer.Text() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(max(msg.Width-2, 10))
		m.textarea.SetHeight(max(msg.Height-4, 3))
		return m, nil

	case hover.TriggerMsg:
		if button, ok := m.buttons.Fire(msg); ok {
			return m, m.press(button)
		}
		return m, nil

	case hover.ExpireMsg:
		if flag, ok := m.expiry.Expired(msg); ok && flag == flagCopied {
			m.copied = false
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.copy):
			return m, m.press(buttonCopy)
		case key.Matches(msg, m.keys.clear):
			return m, m.press(buttonClear)
		case key.Matches(msg, m.keys.blur):
			if m.textarea.Focused() {
				m.textarea.Blur()
				return m, nil
			}
		default:
			if !m.textarea.Focused() {
				return m, m.textarea.Focus()
			}
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.sync()
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	zone, _ := m.zones.At(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		return m.buttons.Hover(zone.Key, false)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && zone.Key != "" {
			m.buttons.Reset()
			return m.press(zone.Key)
		}
	}
	return nil
}

func (m *Model) press(button string) tea.Cmd {
	switch button {
	case buttonCopy:
		if err := m.buffer.Copy(); err != nil {
			slog.Warn("notes copy failed", "err", err)
			m.err = err.Error()
			return nil
		}
		m.err = ""
		m.copied = true
		return m.expiry.Arm(flagCopied, m.copiedTTL)
	case buttonClear:
		m.textarea.Reset()
		m.sync()
	}
	return nil
}

// sync writes the text area through to the store when it changed.
func (m *Model) sync() {
	value := m.textarea.Value()
	if value == m.buffer.Text() {
		return
	}
	if err := m.buffer.Set(value); err != nil {
		slog.Error("notes save failed", "err", err)
		m.err = err.Error()
		return
	}
	m.err = ""
}

func (m *Model) View() string {
	m.zones.Reset()

	title := titleStyle.Render("Notepad")
	copyLabel := m.buttonView(buttonCopy, "Copy")
	if m.copied {
		copyLabel = copiedStyle.Render("Copied!")
	}
	clearLabel := m.buttonView(buttonClear, "Clear")

	x := lipgloss.Width(title) + 1
	m.zones.Add(hover.Zone{Key: buttonCopy, X0: x, Y0: 0, X1: x + lipgloss.Width(copyLabel), Y1: 1})
	x += lipgloss.Width(copyLabel) + 1
	m.zones.Add(hover.Zone{Key: buttonClear, X0: x, Y0: 0, X1: x + lipgloss.Width(clearLabel), Y1: 1})

	header := strings.Join([]string{title, copyLabel, clearLabel}, " ")

	footer := footerStyle.Render(fmt.Sprintf("Saved automatically • %d characters", m.buffer.Len()))
	if m.err != "" {
		footer = lipgloss.JoinHorizontal(lipgloss.Top, footer, errorStyle.Render(m.err))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.textarea.View(),
		footer,
		m.help.View(m.keys),
	)
}

func (m *Model) buttonView(button, label string) string {
	if m.buttons.Current() == button {
		return hoverButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}
