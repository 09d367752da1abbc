package state

// Hook runs once when a state is entered or exited
type Hook func()

// UpdateHook runs once per frame while its state is active.
// dt is the elapsed time in seconds since the previous frame.
type UpdateHook func(dt float64, next Requester)

// Requester accepts state-transition requests.
// Requests are buffered and applied at the next frame boundary.
type Requester interface {
	Request(s AppState)
}

// hookSet holds the callbacks registered for one state
type hookSet struct {
	enter  []Hook
	update []UpdateHook
	exit   []Hook
}

// Machine is a finite-state machine driving per-state enter/update/exit hooks.
//
// State changes only happen in ApplyPending, which the game loop calls once
// between frames. Requests made during a frame go into a single pending slot;
// the last request wins.
type Machine struct {
	current AppState
	pending AppState
	hasNext bool
	started bool

	hooks       map[AppState]*hookSet
	transitions []func(from, to AppState)
}

// NewMachine creates a machine in the given initial state.
// Enter hooks of the initial state run on Start.
func NewMachine(initial AppState) *Machine {
	return &Machine{
		current: initial,
		hooks:   make(map[AppState]*hookSet),
	}
}

func (m *Machine) set(s AppState) *hookSet {
	h, ok := m.hooks[s]
	if !ok {
		h = &hookSet{}
		m.hooks[s] = h
	}
	return h
}

// OnEnter registers a hook run when s is entered
func (m *Machine) OnEnter(s AppState, fn Hook) {
	m.set(s).enter = append(m.set(s).enter, fn)
}

// OnUpdate registers a hook run every frame while s is active
func (m *Machine) OnUpdate(s AppState, fn UpdateHook) {
	m.set(s).update = append(m.set(s).update, fn)
}

// OnExit registers a hook run when s is exited
func (m *Machine) OnExit(s AppState, fn Hook) {
	m.set(s).exit = append(m.set(s).exit, fn)
}

// OnTransition registers an observer called after every applied transition,
// once the new state's enter hooks have run.
func (m *Machine) OnTransition(fn func(from, to AppState)) {
	m.transitions = append(m.transitions, fn)
}

// Start runs the enter hooks of the initial state. Only the first call has any effect.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.runEnter(m.current)
}

// Started reports whether Start has run
func (m *Machine) Started() bool {
	return m.started
}

// Current returns the active state
func (m *Machine) Current() AppState {
	return m.current
}

// Pending returns the buffered transition request, if any
func (m *Machine) Pending() (AppState, bool) {
	return m.pending, m.hasNext
}

// Request buffers a transition to s, overwriting any earlier request
// made since the last frame boundary.
func (m *Machine) Request(s AppState) {
	m.pending = s
	m.hasNext = true
}

// Update runs the update hooks of the current state in registration order
func (m *Machine) Update(dt float64) {
	h, ok := m.hooks[m.current]
	if !ok {
		return
	}
	for _, fn := range h.update {
		fn(dt, m)
	}
}

// ApplyPending is the frame-boundary synchronization point. It reads and
// clears the pending request; if it names a different state, the current
// state's exit hooks run, the state switches, and the new state's enter
// hooks run. Returns true if a transition happened.
func (m *Machine) ApplyPending() bool {
	if !m.hasNext {
		return false
	}
	next := m.pending
	m.hasNext = false

	if next == m.current {
		return false
	}

	from := m.current
	m.runExit(from)
	m.current = next
	m.runEnter(next)

	for _, fn := range m.transitions {
		fn(from, next)
	}
	return true
}

func (m *Machine) runEnter(s AppState) {
	if h, ok := m.hooks[s]; ok {
		for _, fn := range h.enter {
			fn()
		}
	}
}

func (m *Machine) runExit(s AppState) {
	if h, ok := m.hooks[s]; ok {
		for _, fn := range h.exit {
			fn()
		}
	}
}
