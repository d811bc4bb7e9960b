package config

import (
	_ "embed"
)

//go:embed defaults/x2048.yaml
var defaultX2048YAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultX2048Config returns the hardcoded 2048 configuration, used as
// the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultX2048Config() X2048Config {
	return X2048Config{
		Board: BoardConfig{
			Width:  4,
			Height: 4,
		},
		StartTiles: 1,
	}
}

// DefaultSnakeConfig returns the hardcoded Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: BoardConfig{
			Width:  20,
			Height: 20,
		},
		Speed: SnakeSpeed{
			MovesPerSecond: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultMinesConfig returns the hardcoded Minesweeper configuration.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Field: BoardConfig{
			Width:  16,
			Height: 12,
		},
		Mines: 28,
	}
}
