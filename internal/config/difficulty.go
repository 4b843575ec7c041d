package config

// DifficultyManager steps obstacle speed on a fixed tick cadence.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether speed ever changes.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Increment > 0 && d.cfg.Every > 0
}

// BaseSpeed returns the speed in effect on the first tick.
func (d *DifficultyManager) BaseSpeed() float64 {
	return d.cfg.BaseSpeed
}

// Due reports whether the tick numbered frame ends with a speed step.
// Frame 0 counts.
func (d *DifficultyManager) Due(frame int) bool {
	return d.IsEnabled() && frame%d.cfg.Every == 0
}

// Step returns speed after the end-of-tick adjustment for frame.
func (d *DifficultyManager) Step(speed float64, frame int) float64 {
	if d.Due(frame) {
		return speed + d.cfg.Increment
	}
	return speed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	base := DefaultConfig().Difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.BaseSpeed = base.BaseSpeed * 0.75
		cfg.Difficulty.Increment = base.Increment * 0.5
	case DifficultyNormal:
		cfg.Difficulty.BaseSpeed = base.BaseSpeed
		cfg.Difficulty.Increment = base.Increment
	case DifficultyHard:
		cfg.Difficulty.BaseSpeed = base.BaseSpeed * 1.5
		cfg.Difficulty.Increment = base.Increment * 1.5
	case DifficultyFixed:
		cfg.Difficulty.Increment = 0
	}
}
