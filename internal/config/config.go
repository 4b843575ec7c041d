// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for Sky Dodge.
type Config struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Background BackgroundConfig `yaml:"background"`
	Input      InputConfig      `yaml:"input"`
	Storage    StorageConfig    `yaml:"storage"`
}

// PlayfieldConfig defines the logical drawing area in pixels.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from playfield bottom to sprite top
}

// ObstacleConfig defines the falling obstacles.
type ObstacleConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SpawnEvery int     `yaml:"spawn_every"` // Ticks between spawns
}

// DifficultyConfig defines how obstacle speed grows over time.
type DifficultyConfig struct {
	BaseSpeed float64 `yaml:"base_speed"`
	Increment float64 `yaml:"increment"` // Added to speed on every step
	Every     int     `yaml:"every"`     // Ticks between steps
}

// BackgroundConfig defines the score thresholds of the visual regimes.
type BackgroundConfig struct {
	DuskStart     int     `yaml:"dusk_start"`  // Sky starts fading to black
	SpaceStart    int     `yaml:"space_start"` // Starfield replaces the sky
	Stars         int     `yaml:"stars"`
	MaxStarRadius float64 `yaml:"max_star_radius"`
}

// InputConfig tunes keyboard handling in terminals without key-up events.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key press counts as held without a repeat
}

// StorageConfig names the persisted best score.
type StorageConfig struct {
	BestScoreKey string `yaml:"best_score_key"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects configurations the game loop cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must have positive size", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player must have positive size", ErrInvalid)
	case c.Player.BottomOffset < c.Player.Height || c.Player.BottomOffset > c.Playfield.Height:
		return fmt.Errorf("%w: player bottom_offset %.0f does not fit the playfield", ErrInvalid, c.Player.BottomOffset)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("%w: obstacles must have positive size", ErrInvalid)
	case c.Obstacles.Width >= c.Playfield.Width:
		return fmt.Errorf("%w: obstacle width %.0f must be below playfield width %.0f",
			ErrInvalid, c.Obstacles.Width, c.Playfield.Width)
	case c.Obstacles.SpawnEvery <= 0:
		return fmt.Errorf("%w: obstacles.spawn_every must be positive", ErrInvalid)
	case c.Difficulty.BaseSpeed < 0 || c.Difficulty.Increment < 0:
		return fmt.Errorf("%w: obstacle speed never decreases", ErrInvalid)
	case c.Difficulty.Every <= 0:
		return fmt.Errorf("%w: difficulty.every must be positive", ErrInvalid)
	case c.Background.DuskStart < 0 || c.Background.SpaceStart <= c.Background.DuskStart:
		return fmt.Errorf("%w: background thresholds must satisfy 0 <= dusk_start < space_start", ErrInvalid)
	case c.Background.Stars < 0 || c.Background.MaxStarRadius < 0:
		return fmt.Errorf("%w: starfield settings must not be negative", ErrInvalid)
	case c.Storage.BestScoreKey == "":
		return fmt.Errorf("%w: storage.best_score_key is empty", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
