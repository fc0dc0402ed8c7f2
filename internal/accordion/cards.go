package accordion

// Request asks the owner of State to open or close a card.
type Request[K comparable] struct {
	ID   K
	Open bool
}

// Cards mediates pointer and click events for every card on the board. It
// owns the close timers, not the open state: every method takes whether the
// card is currently open and returns the toggle request, if any, the owner
// should apply.
type Cards[K comparable] struct {
	timers *Timers[K]
}

func NewCards[K comparable]() *Cards[K] {
	return &Cards[K]{timers: NewTimers[K]()}
}

// Enter handles the pointer moving onto a card. A pending close is canceled
// and a closed card asks to open.
func (c *Cards[K]) Enter(id K, isOpen bool) (Request[K], bool) {
	c.timers.Cancel(id)
	if isOpen {
		return Request[K]{}, false
	}
	return Request[K]{ID: id, Open: true}, true
}

// Move handles pointer motion inside a card, keeping it alive.
func (c *Cards[K]) Move(id K) {
	c.timers.Cancel(id)
}

// Leave handles the pointer leaving a card and schedules its close. The
// caller delivers the ticket to Expire after the dwell delay.
func (c *Cards[K]) Leave(id K) Ticket[K] {
	return c.timers.Schedule(id)
}

// Click toggles a card immediately, bypassing the dwell delay.
func (c *Cards[K]) Click(id K, isOpen bool) Request[K] {
	c.timers.Cancel(id)
	return Request[K]{ID: id, Open: !isOpen}
}

// Expire turns a fired close timer into a close request unless it was
// canceled or superseded.
func (c *Cards[K]) Expire(ticket Ticket[K]) (Request[K], bool) {
	if !c.timers.Expire(ticket) {
		return Request[K]{}, false
	}
	return Request[K]{ID: ticket.Key, Open: false}, true
}

func (c *Cards[K]) ClosePending(id K) bool {
	return c.timers.Pending(id)
}

// Teardown cancels every pending close, for when the cards are going away.
func (c *Cards[K]) Teardown() {
	c.timers.CancelAll()
}
