package sim

// Action is a control the player can hold down. Keys that do not map to an
// Action never reach the simulation.
type Action uint16

const (
	ActionAccelerate Action = 1 << iota
	ActionReverse
	ActionTurnLeft
	ActionTurnRight
	ActionCameraLeft
	ActionCameraRight
	ActionCameraRaise
	ActionCameraLower
	ActionZoomIn
	ActionZoomOut
)

// Snapshot is the input state read once at the start of a tick.
type Snapshot struct {
	Held   Action
	Scroll float64 // accumulated since the previous snapshot
}

func (s Snapshot) Has(a Action) bool { return s.Held&a != 0 }

// With returns a copy of s with the given actions held.
func (s Snapshot) With(actions ...Action) Snapshot {
	for _, a := range actions {
		s.Held |= a
	}
	return s
}
