package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/qb/internal/board"
	"github.com/Paintersrp/qb/internal/config"
	"github.com/Paintersrp/qb/internal/notes"
	"github.com/Paintersrp/qb/internal/source"
	"github.com/Paintersrp/qb/internal/tui/boardview"
	"github.com/Paintersrp/qb/internal/tui/notepad"
)

func newTestRoot(t *testing.T) *RootModel {
	t.Helper()

	cfg := config.Default(t.TempDir())
	cfg.GlamourStyle = "ascii"

	store, err := notes.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open notes store: %v", err)
	}
	buf, err := notes.Load(store, notes.WithClipboard(func(string) error { return nil }))
	if err != nil {
		t.Fatalf("failed to load notes: %v", err)
	}

	bv := boardview.New(board.New(board.Defaults(), cfg.KeywordLimit), cfg, source.New(nil))
	root := NewRootModel(bv, notepad.New(buf, cfg))
	root.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	return root
}

func TestRootModelNavigation(t *testing.T) {
	root := newTestRoot(t)

	if root.Active() != "board" {
		t.Fatalf("expected board view first, got %s", root.Active())
	}

	root.Update(tea.KeyMsg{Type: tea.KeyTab})
	if root.Active() != "notes" {
		t.Fatalf("expected tab to switch to the notepad, got %s", root.Active())
	}
	if !strings.Contains(root.View(), "Saved automatically") {
		t.Fatalf("expected notepad in view")
	}

	root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true})
	if root.Active() != "board" {
		t.Fatalf("expected alt+1 to return to the board, got %s", root.Active())
	}
}

func TestTabIsTypedWhileBoardPromptIsOpen(t *testing.T) {
	root := newTestRoot(t)

	root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	root.Update(tea.KeyMsg{Type: tea.KeyTab})

	if root.Active() != "board" {
		t.Fatalf("expected tab to stay on the board while a prompt is open")
	}
}

func TestNotepadTypingDoesNotSwitchViews(t *testing.T) {
	root := newTestRoot(t)
	root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true})

	root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q1")})

	if root.Active() != "notes" {
		t.Fatalf("expected typing to stay in the notepad")
	}
	if !strings.Contains(root.View(), "2 characters") {
		t.Fatalf("expected typed text to reach the notepad")
	}
}

func TestCtrlCQuits(t *testing.T) {
	root := newTestRoot(t)

	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewFillsFrame(t *testing.T) {
	root := newTestRoot(t)

	lines := strings.Split(root.View(), "\n")
	if len(lines) != 50 {
		t.Fatalf("expected 50 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w < 120 {
			t.Fatalf("line %d narrower than the frame: %d", i, w)
		}
	}
}
