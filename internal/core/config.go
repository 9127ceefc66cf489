package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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
	Score    int    // Current score
	Ticks    uint64 // Simulation ticks in the current run
	Mode     string // Screen name: start, play, or end
	GameOver bool   // Whether the run has ended
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// RunOver is set on the tick a run ends, so the platform can record it once.
	RunOver bool
}

// Game is the contract between a game and the platform layer.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier, used for score storage.
	ID() string
	// Title returns a human-readable name for display.
	Title() string
	// Reset returns the game to its start screen.
	Reset(cfg RuntimeConfig)
	// Step advances the game by one fixed tick.
	Step(in InputFrame) StepResult
	// Render draws the current state into the screen buffer.
	Render(dst *Screen)
	// State returns the current game state.
	State() GameState
}
