package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config file.
const LocalPath = "configs/quiz.yaml"

// Load loads the quiz configuration.
// Search order: customPath -> ~/.geoquiz/config.yaml -> ./configs/quiz.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what
// it names.
func Load(customPath string) (QuizConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return QuizConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return QuizConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultQuizYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
// A difficulty preset sets the candidate count unless the file also names
// round.candidates.
func Parse(data []byte) (QuizConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return QuizConfig{}, err
	}
	if cfg.Difficulty != "" {
		preset, err := ParsePreset(string(cfg.Difficulty))
		if err != nil {
			return QuizConfig{}, err
		}
		// Decode again over the preset so explicit settings still win
		cfg = Default()
		ApplyPreset(&cfg, preset)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return QuizConfig{}, err
		}
		cfg.Difficulty = preset
	}
	if err := cfg.Validate(); err != nil {
		return QuizConfig{}, err
	}
	return cfg, nil
}

// UserDir returns ~/.geoquiz, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".geoquiz")
}

// UserConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func UserConfigPath() string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
