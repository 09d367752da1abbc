package state

// AppState represents the current phase of the application
type AppState int

const (
	StateLoading AppState = iota
	StatePlaying
)

// String returns the string representation of the application state
func (s AppState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}
