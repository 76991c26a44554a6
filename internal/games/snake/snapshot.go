package snake

// ResetCause says why the snake was sent back to the centre.
type ResetCause string

const (
	CauseSelfCollision     ResetCause = "self_collision"
	CauseObstacleCollision ResetCause = "obstacle_collision"
	CauseBoardFull         ResetCause = "board_full"
)

// EventKind identifies a tick event.
type EventKind string

const (
	EventTurned EventKind = "turned"
	EventGrew   EventKind = "grew"
	EventReset  EventKind = "reset"
)

// Event is something notable that happened during a tick.
type Event struct {
	Kind  EventKind
	At    Cell       // head position when the event fired
	Cause ResetCause // set for EventReset
	Dir   Direction  // set for EventTurned
}

// State is a copy of the simulation state handed to hosts after each tick.
// Hosts may keep it; it shares no memory with the simulation.
type State struct {
	Tick        uint64
	Variant     Variant
	Board       Board
	Segments    []Cell // head at index 0
	Direction   Direction
	Pending     Direction
	Food        Cell
	Obstacle    Cell
	HasObstacle bool
	Boosted     bool
	Resets      int
}

// Head returns the head cell.
func (s State) Head() Cell {
	return s.Segments[0]
}

// Len returns the snake length.
func (s State) Len() int {
	return len(s.Segments)
}

// TickInput is the input latched for one tick.
type TickInput struct {
	Direction Direction // DirNone when no direction key was pressed
}

// TickResult is returned by Simulation.Tick.
type TickResult struct {
	State State
	// Vacated lists cells the snake left this tick, for hosts that erase
	// instead of redrawing the whole board.
	Vacated []Cell
	Events  []Event
}

// Reset returns the reset event of the tick, if any.
func (r TickResult) Reset() (Event, bool) {
	for _, e := range r.Events {
		if e.Kind == EventReset {
			return e, true
		}
	}
	return Event{}, false
}

// Grew reports whether the snake ate this tick.
func (r TickResult) Grew() bool {
	for _, e := range r.Events {
		if e.Kind == EventGrew {
			return true
		}
	}
	return false
}
