package config

import (
	_ "embed"
)

//go:embed defaults/skydodge.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in Sky Dodge configuration.
func DefaultConfig() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        30,
			Height:       30,
			Speed:        5,
			BottomOffset: 60,
		},
		Obstacles: ObstacleConfig{
			Width:      80,
			Height:     20,
			SpawnEvery: 90,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed: 2,
			Increment: 0.5,
			Every:     300, // 5 seconds at 60fps
		},
		Background: BackgroundConfig{
			DuskStart:     2000,
			SpaceStart:    4000,
			Stars:         200,
			MaxStarRadius: 2,
		},
		Input: InputConfig{
			HoldMS: 180,
		},
		Storage: StorageConfig{
			BestScoreKey: "highScore",
		},
	}
}
