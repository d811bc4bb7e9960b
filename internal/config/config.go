// Package config provides YAML-based game configuration loading and
// difficulty management for the platform.
package config

// BoardConfig defines the playing field dimensions of a grid game.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// X2048Config contains all configuration for the 2048 game.
type X2048Config struct {
	Board      BoardConfig `yaml:"board"`
	StartTiles int         `yaml:"start_tiles"` // Tiles spawned at game start
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Field      BoardConfig      `yaml:"field"`
	Speed      SnakeSpeed       `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeSpeed defines how fast the snake moves.
type SnakeSpeed struct {
	MovesPerSecond float64 `yaml:"moves_per_second"`
}

// MinesConfig contains all configuration for the Minesweeper game.
type MinesConfig struct {
	Field BoardConfig `yaml:"field"`
	Mines int         `yaml:"mines"`
}

// DifficultyConfig defines optional difficulty progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed factor at max difficulty
}

// DifficultyPreset is a named difficulty level selectable from the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the starting difficulty for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
