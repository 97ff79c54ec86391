// Package game provides the main game loop and world setup.
package game

// State is the run state of the tick loop.
type State int

const (
	// StatePaused waits for player input; systems do not run.
	StatePaused State = iota
	// StateRunning runs one full tick of systems, then returns to StatePaused.
	StateRunning
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}
