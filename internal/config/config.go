// Package config provides YAML-based quiz configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// QuizConfig contains all tunable settings of the quiz.
type QuizConfig struct {
	Round      RoundConfig      `yaml:"round"`
	Delays     DelayConfig      `yaml:"delays"`
	Language   string           `yaml:"language"`    // Initial language code
	ContentDir string           `yaml:"content_dir"` // Empty uses the embedded data set
	Storage    StorageConfig    `yaml:"storage"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// RoundConfig defines the shape of a round.
type RoundConfig struct {
	Candidates int `yaml:"candidates"`
	MaxTries   int `yaml:"max_tries"`
}

// DelayConfig holds the post-round delays for each presentation mode.
type DelayConfig struct {
	Text     ModeDelays `yaml:"text"`
	Windowed ModeDelays `yaml:"windowed"`
}

// ModeDelays defines how long a mode waits before the next round and before
// the game over screen.
type ModeDelays struct {
	NextRound time.Duration `yaml:"next_round"`
	GameOver  time.Duration `yaml:"game_over"`
}

// StorageConfig defines where session history is kept.
type StorageConfig struct {
	Path string `yaml:"path"` // Empty uses ~/.geoquiz/scores.db
}

// Mode is a presentation mode.
type Mode string

const (
	ModeText     Mode = "text"
	ModeWindowed Mode = "windowed"
)

// DelaysFor returns the delays of a presentation mode.
func (c QuizConfig) DelaysFor(mode Mode) ModeDelays {
	if mode == ModeText {
		return c.Delays.Text
	}
	return c.Delays.Windowed
}

// Validate reports every out-of-range setting.
func (c QuizConfig) Validate() error {
	var errs []error
	if c.Round.Candidates < 1 {
		errs = append(errs, fmt.Errorf("config: round.candidates must be at least 1, got %d", c.Round.Candidates))
	}
	if c.Round.MaxTries < 1 {
		errs = append(errs, fmt.Errorf("config: round.max_tries must be at least 1, got %d", c.Round.MaxTries))
	}
	for name, d := range map[string]time.Duration{
		"delays.text.next_round":     c.Delays.Text.NextRound,
		"delays.text.game_over":      c.Delays.Text.GameOver,
		"delays.windowed.next_round": c.Delays.Windowed.NextRound,
		"delays.windowed.game_over":  c.Delays.Windowed.GameOver,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("config: %s must not be negative, got %v", name, d))
		}
	}
	if c.Difficulty != "" {
		if _, err := ParsePreset(string(c.Difficulty)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset parses a preset name, ignoring case.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// CandidatesForPreset returns the candidate count of a difficulty preset.
func CandidatesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return 8
	default:
		return 5
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *QuizConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	cfg.Round.Candidates = CandidatesForPreset(preset)
}
