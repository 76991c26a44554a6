package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Default simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Length  int  // Snake length
	Paused  bool // Whether the game is paused
	Boosted bool // Whether the speed modifier is active
}

// Event is a notable thing that happened during one tick.
// Platforms log events; games never depend on them being consumed.
type Event struct {
	Name   string
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// TickRate is the rate the platform should use to schedule the next
	// tick. Zero means keep the current rate.
	TickRate int
	Events   []Event
}
