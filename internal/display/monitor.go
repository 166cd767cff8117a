package display

import "sync"

// Listener receives every classification together with the raw width that
// produced it.
type Listener func(state State, width int)

// Unsubscribe detaches a listener. Calling it more than once is a no-op.
type Unsubscribe func()

// Monitor fans viewport resizes out to subscribers. Each Resize notifies every
// listener synchronously, once, without debouncing.
type Monitor struct {
	mu        sync.Mutex
	current   State
	listeners map[int]Listener
	order     []int
	nextID    int
}

// NewMonitor returns a monitor whose current state is the classification of
// the initial size.
func NewMonitor(width, height int) *Monitor {
	return &Monitor{
		current:   Classify(width, height),
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers l and returns the function that removes it.
func (m *Monitor) Subscribe(l Listener) Unsubscribe {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.order = append(m.order, id)
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.listeners, id)
			for i, v := range m.order {
				if v == id {
					m.order = append(m.order[:i], m.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Resize records the new size and notifies the listeners in subscription
// order. Listeners run outside the lock and may unsubscribe themselves.
func (m *Monitor) Resize(width, height int) State {
	m.mu.Lock()
	state := Classify(width, height)
	m.current = state
	listeners := make([]Listener, 0, len(m.order))
	for _, id := range m.order {
		listeners = append(listeners, m.listeners[id])
	}
	m.mu.Unlock()

	for _, l := range listeners {
		l(state, width)
	}
	return state
}

// Current returns the last classification.
func (m *Monitor) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Listeners returns the number of subscribed listeners.
func (m *Monitor) Listeners() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.order)
}
