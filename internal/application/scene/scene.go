// Package scene defines the hook sets that make up each application screen.
//
// A screen (loading, playing, ...) implements Scene plus any of Enterer,
// Updater and Exiter. Register wires whichever hooks a scene implements
// into the state machine's dispatch table for the scene's state.
package scene

import "github.com/younwookim/loadscreen/internal/application/state"

// Scene is a screen bound to one application state
type Scene interface {
	// State returns the state this scene is active in.
	State() state.AppState
}

// Enterer is implemented by scenes that build something when their state is entered.
type Enterer interface {
	// OnEnter is called exactly once each time the state is entered,
	// before any Update for that state.
	OnEnter()
}

// Updater is implemented by scenes with per-frame behavior.
type Updater interface {
	// Update is called once per frame while the state is active.
	// dt is the elapsed time in seconds since the previous frame.
	// Transition requests made through next take effect at the frame boundary.
	Update(dt float64, next state.Requester)
}

// Exiter is implemented by scenes that clean up when their state is exited.
type Exiter interface {
	// OnExit is called exactly once when leaving the state, after its last Update.
	OnExit()
}

// Register adds the hooks s implements to m
func Register(m *state.Machine, s Scene) {
	st := s.State()
	if e, ok := s.(Enterer); ok {
		m.OnEnter(st, e.OnEnter)
	}
	if u, ok := s.(Updater); ok {
		m.OnUpdate(st, u.Update)
	}
	if x, ok := s.(Exiter); ok {
		m.OnExit(st, x.OnExit)
	}
}
