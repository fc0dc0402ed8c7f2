package hover

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMapPrefersTopmostZone(t *testing.T) {
	var m Map
	m.Add(Zone{Key: "card", X0: 0, Y0: 0, X1: 20, Y1: 5})
	m.Add(Zone{Key: "chip", X0: 2, Y0: 1, X1: 6, Y1: 2})
	m.Add(Zone{Key: "empty", X0: 3, Y0: 3, X1: 3, Y1: 4})

	if m.Len() != 2 {
		t.Fatalf("expected empty zone to be dropped, got %d zones", m.Len())
	}
	if z, ok := m.At(3, 1); !ok || z.Key != "chip" {
		t.Fatalf("expected chip on top, got %+v", z)
	}
	if z, ok := m.At(10, 4); !ok || z.Key != "card" {
		t.Fatalf("expected card, got %+v", z)
	}
	if _, ok := m.At(20, 0); ok {
		t.Fatalf("expected right edge to be exclusive")
	}

	m.Reset()
	if _, ok := m.At(3, 1); ok {
		t.Fatalf("expected reset map to be empty")
	}
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	return cmd()
}

func TestButtonsFireAfterRest(t *testing.T) {
	b := NewButtons(time.Millisecond)

	msg, ok := run(t, b.Hover("reset", false)).(TriggerMsg)
	if !ok {
		t.Fatalf("expected a TriggerMsg")
	}

	key, ok := b.Fire(msg)
	if !ok || key != "reset" {
		t.Fatalf("expected reset to fire, got %q %v", key, ok)
	}
	if _, ok := b.Fire(msg); ok {
		t.Fatalf("expected a ticket to fire once")
	}
}

func TestButtonsLeaveCancels(t *testing.T) {
	b := NewButtons(time.Millisecond)

	cmd := b.Hover("chip:cache", false)
	b.Hover("", false)

	msg := run(t, cmd).(TriggerMsg)
	if _, ok := b.Fire(msg); ok {
		t.Fatalf("expected leaving to cancel the trigger")
	}
	if b.Pending("chip:cache") {
		t.Fatalf("expected nothing pending after leaving")
	}
}

func TestButtonsActiveDoesNotArm(t *testing.T) {
	b := NewButtons(time.Millisecond)

	if cmd := b.Hover("chip:cache", true); cmd != nil {
		t.Fatalf("expected active button not to arm")
	}
	if b.Current() != "chip:cache" {
		t.Fatalf("expected hover to be tracked, got %q", b.Current())
	}
	if cmd := b.Hover("chip:cache", false); cmd != nil {
		t.Fatalf("expected repeated hover on the same button to be ignored")
	}
}

func TestExpiryRearmSupersedes(t *testing.T) {
	e := NewExpiry()

	first := run(t, e.Arm("success", time.Millisecond)).(ExpireMsg)
	second := run(t, e.Arm("success", time.Millisecond)).(ExpireMsg)

	if _, ok := e.Expired(first); ok {
		t.Fatalf("expected superseded expiry to be ignored")
	}
	key, ok := e.Expired(second)
	if !ok || key != "success" {
		t.Fatalf("expected latest expiry to fire, got %q %v", key, ok)
	}
}

func TestExpiryCancel(t *testing.T) {
	e := NewExpiry()

	msg := run(t, e.Arm("copied", time.Millisecond)).(ExpireMsg)
	e.Cancel("copied")

	if _, ok := e.Expired(msg); ok {
		t.Fatalf("expected canceled expiry to be ignored")
	}
}
