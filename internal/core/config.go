package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic word selection.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score      int  // Points scored in the current round
	TotalScore int  // Lifetime points
	GameOver   bool // Whether the round has ended
	Won        bool // Whether the round ended with a win
}

// StepResult is returned by Step() after each input is applied.
type StepResult struct {
	State   GameState
	Message string // Status line for the player, empty if nothing to report
}
