package accordion

// Ticket identifies one scheduled task. A ticket is only honoured if no newer
// task was scheduled for the same key and the task was not canceled.
type Ticket[K comparable] struct {
	Key        K
	Generation uint64
}

// Timers tracks cancelable scheduled tasks keyed by owner. It does not run
// clocks itself; callers deliver tickets back through Expire once the delay
// they chose has elapsed.
type Timers[K comparable] struct {
	next    uint64
	pending map[K]uint64
}

func NewTimers[K comparable]() *Timers[K] {
	return &Timers[K]{pending: make(map[K]uint64)}
}

// Schedule registers a task for key, replacing any task already pending for
// it.
func (t *Timers[K]) Schedule(key K) Ticket[K] {
	if t.pending == nil {
		t.pending = make(map[K]uint64)
	}
	t.next++
	t.pending[key] = t.next
	return Ticket[K]{Key: key, Generation: t.next}
}

// Cancel drops the task pending for key. It reports whether one was pending.
func (t *Timers[K]) Cancel(key K) bool {
	if _, ok := t.pending[key]; !ok {
		return false
	}
	delete(t.pending, key)
	return true
}

// CancelAll drops every pending task.
func (t *Timers[K]) CancelAll() {
	for key := range t.pending {
		delete(t.pending, key)
	}
}

func (t *Timers[K]) Pending(key K) bool {
	_, ok := t.pending[key]
	return ok
}

func (t *Timers[K]) Len() int {
	return len(t.pending)
}

// Expire consumes ticket and reports whether it is still current.
func (t *Timers[K]) Expire(ticket Ticket[K]) bool {
	gen, ok := t.pending[ticket.Key]
	if !ok || gen != ticket.Generation {
		return false
	}
	delete(t.pending, ticket.Key)
	return true
}
