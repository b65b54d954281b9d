package gallery

// KeyEscape is the key name that dismisses an open photo.
const KeyEscape = "Escape"

// KeyEvent is a key press delivered by the host environment.
type KeyEvent struct {
	Key string
}

// Dispatcher fans key events out to subscribers. It stands in for the
// page-wide key listener registry and is not safe for concurrent use; each
// page view owns one.
type Dispatcher struct {
	next      uint64
	listeners map[uint64]func(KeyEvent)
	order     []uint64
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: map[uint64]func(KeyEvent){}}
}

// Subscribe registers fn until the returned subscription is released.
func (d *Dispatcher) Subscribe(fn func(KeyEvent)) *Subscription {
	d.next++
	id := d.next
	d.listeners[id] = fn
	d.order = append(d.order, id)
	return &Subscription{d: d, id: id}
}

// Dispatch delivers ev to the listeners registered when it was called.
// Listeners released by an earlier listener during the same dispatch are
// skipped.
func (d *Dispatcher) Dispatch(ev KeyEvent) {
	ids := append([]uint64(nil), d.order...)
	for _, id := range ids {
		if fn, ok := d.listeners[id]; ok {
			fn(ev)
		}
	}
}

// Listeners returns the number of live subscriptions.
func (d *Dispatcher) Listeners() int { return len(d.listeners) }

func (d *Dispatcher) remove(id uint64) {
	if _, ok := d.listeners[id]; !ok {
		return
	}
	delete(d.listeners, id)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Subscription is a scoped registration on a Dispatcher.
type Subscription struct {
	d        *Dispatcher
	id       uint64
	released bool
}

// Release detaches the listener. Calling it more than once is a no-op.
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.d.remove(s.id)
}

// Active reports whether the listener is still attached.
func (s *Subscription) Active() bool { return s != nil && !s.released }
