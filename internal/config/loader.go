package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config with the standard search order:
// customPath -> ~/.gridhall/configs/<name> -> ./configs/<name> ->
// embedded default. A custom path that fails to read or parse is an
// error; the fallback tiers fail silently to the next one.
func load(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the per-user config path, or empty if the home
// directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridhall", "configs", filename)
}

// LoadX2048 loads the 2048 configuration.
func LoadX2048(customPath string) (X2048Config, error) {
	var cfg X2048Config
	if err := load(customPath, "x2048.yaml", defaultX2048YAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultX2048Config(), nil
	}
	return cfg, nil
}

// LoadSnake loads the Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := load(customPath, "snake.yaml", defaultSnakeYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

// LoadMines loads the Minesweeper configuration.
func LoadMines(customPath string) (MinesConfig, error) {
	var cfg MinesConfig
	if err := load(customPath, "mines.yaml", defaultMinesYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultMinesConfig(), nil
	}
	return cfg, nil
}

// ApplySnakePreset adjusts the Snake config for a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
