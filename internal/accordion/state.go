// Package accordion keeps at most one card open and turns pointer activity on
// cards into open and close requests.
package accordion

// State holds the id of the open card, if any. The zero value has nothing
// open.
type State[K comparable] struct {
	open K
	has  bool
}

// Toggle applies an open or close request for id. Opening always wins and
// closes whatever else was open. Closing only applies to the card that is
// currently open; a close for any other card is stale and leaves the state
// unchanged.
func (s State[K]) Toggle(id K, wantOpen bool) State[K] {
	if wantOpen {
		return State[K]{open: id, has: true}
	}
	if s.has && s.open == id {
		return State[K]{}
	}
	return s
}

func (s State[K]) Open() (K, bool) {
	return s.open, s.has
}

func (s State[K]) IsOpen(id K) bool {
	return s.has && s.open == id
}
