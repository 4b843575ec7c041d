package core

// RuntimeConfig contains configuration passed to the game at initialization.
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

// GameState is a snapshot of the session's externally visible status.
type GameState struct {
	Frame     int     // Ticks completed while running
	Score     int     // Current score
	BestScore int     // Best score known to this session
	Speed     float64 // Current obstacle speed
	Obstacles int     // Live obstacle count
	GameOver  bool    // Whether the game has ended
}

// TickResult is returned after each tick.
// Continue is false once the loop has halted and no further tick should
// be scheduled.
type TickResult struct {
	State    GameState
	Continue bool
}

// IntStore persists integers by key.
type IntStore interface {
	GetInt(key string) (int, error)
	SetInt(key string, value int) error
}

// MaxIntStore is an IntStore that can raise a value atomically.
// MaxInt stores value only when it exceeds the stored one and returns the
// value held afterwards.
type MaxIntStore interface {
	IntStore
	MaxInt(key string, value int) (int, error)
}

// StatusSink receives the live score, best score and game-over indicator.
type StatusSink interface {
	SetScore(score int)
	SetBest(best int)
	SetGameOver(over bool)
}

// Random is a uniform sampler over [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}
