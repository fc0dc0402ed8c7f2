// Package hover maps mouse positions to the clickable regions of a rendered
// view and fires a button after the pointer rests on it.
package hover

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/qb/internal/accordion"
)

// Zone is a rectangle of cells. X1 and Y1 are exclusive.
type Zone struct {
	Key    string
	X0, Y0 int
	X1, Y1 int
}

func (z Zone) Contains(x, y int) bool {
	return x >= z.X0 && x < z.X1 && y >= z.Y0 && y < z.Y1
}

// Map holds the zones of the last rendered frame. Later zones sit on top of
// earlier ones.
type Map struct {
	zones []Zone
}

func (m *Map) Reset() { m.zones = m.zones[:0] }

func (m *Map) Add(z Zone) {
	if z.X1 <= z.X0 || z.Y1 <= z.Y0 {
		return
	}
	m.zones = append(m.zones, z)
}

func (m *Map) At(x, y int) (Zone, bool) {
	for i := len(m.zones) - 1; i >= 0; i-- {
		if m.zones[i].Contains(x, y) {
			return m.zones[i], true
		}
	}
	return Zone{}, false
}

func (m *Map) Len() int { return len(m.zones) }

// Find returns the topmost zone registered under key.
func (m *Map) Find(key string) (Zone, bool) {
	for i := len(m.zones) - 1; i >= 0; i-- {
		if m.zones[i].Key == key {
			return m.zones[i], true
		}
	}
	return Zone{}, false
}

// TriggerMsg is delivered when the hover delay for a button elapses.
type TriggerMsg struct {
	Ticket accordion.Ticket[string]
}

// Buttons fires a button once the pointer has rested on it for the delay.
// Leaving the button first cancels it.
type Buttons struct {
	timers  *accordion.Timers[string]
	delay   time.Duration
	current string
}

func NewButtons(delay time.Duration) *Buttons {
	return &Buttons{timers: accordion.NewTimers[string](), delay: delay}
}

// Hover reports the button under the pointer, or "" for none. Buttons that
// are already in effect do not arm.
func (b *Buttons) Hover(key string, active bool) tea.Cmd {
	if key == b.current {
		return nil
	}
	if b.current != "" {
		b.timers.Cancel(b.current)
	}
	b.current = key
	if key == "" || active {
		return nil
	}

	ticket := b.timers.Schedule(key)
	return tea.Tick(b.delay, func(time.Time) tea.Msg {
		return TriggerMsg{Ticket: ticket}
	})
}

// Fire returns the button to activate for msg, if it is still armed.
func (b *Buttons) Fire(msg TriggerMsg) (string, bool) {
	if !b.timers.Expire(msg.Ticket) {
		return "", false
	}
	return msg.Ticket.Key, true
}

func (b *Buttons) Current() string { return b.current }

func (b *Buttons) Pending(key string) bool { return b.timers.Pending(key) }

// Reset forgets the hovered button and disarms everything.
func (b *Buttons) Reset() {
	b.current = ""
	b.timers.CancelAll()
}

// ExpireMsg carries a banner or flag expiry.
type ExpireMsg struct {
	Ticket accordion.Ticket[string]
}

// Expiry clears transient flags after a fixed time. Arming a key again
// restarts its clock.
type Expiry struct {
	timers *accordion.Timers[string]
}

func NewExpiry() *Expiry {
	return &Expiry{timers: accordion.NewTimers[string]()}
}

func (e *Expiry) Arm(key string, ttl time.Duration) tea.Cmd {
	ticket := e.timers.Schedule(key)
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ExpireMsg{Ticket: ticket}
	})
}

func (e *Expiry) Cancel(key string) { e.timers.Cancel(key) }

// Expired reports the key whose flag should clear, if msg is still current.
func (e *Expiry) Expired(msg ExpireMsg) (string, bool) {
	if !e.timers.Expire(msg.Ticket) {
		return "", false
	}
	return msg.Ticket.Key, true
}
