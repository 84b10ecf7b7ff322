package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// Default returns the built-in quiz configuration.
func Default() QuizConfig {
	return QuizConfig{
		Round: RoundConfig{
			Candidates: 5,
			MaxTries:   3,
		},
		Delays: DelayConfig{
			Text: ModeDelays{
				NextRound: 3 * time.Second,
				GameOver:  2 * time.Second,
			},
			Windowed: ModeDelays{
				NextRound: 1500 * time.Millisecond,
				GameOver:  2 * time.Second,
			},
		},
		Language:   "en",
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultQuizYAML
}
