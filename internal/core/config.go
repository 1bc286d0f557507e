package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Scheduler frames per second (default 60)
	FrameSkip int   // Frames dropped between ticks in low-power mode (0 = none)
	Seed      int64 // RNG seed for deterministic gameplay
	Level     int   // Level index to start from
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Coins    int  // Coins collected in this run
	Level    int  // Zero-based index of the current level
	GameOver bool // Whether the run has ended (all levels cleared)
	Paused   bool // Whether the game is paused
	Started  bool // Whether the start action has been given
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
