package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestDelaysFor(t *testing.T) {
	cfg := Default()
	tests := []struct {
		mode      Mode
		nextRound time.Duration
		gameOver  time.Duration
	}{
		{ModeText, 3 * time.Second, 2 * time.Second},
		{ModeWindowed, 1500 * time.Millisecond, 2 * time.Second},
	}
	for _, tt := range tests {
		d := cfg.DelaysFor(tt.mode)
		if d.NextRound != tt.nextRound || d.GameOver != tt.gameOver {
			t.Errorf("DelaysFor(%s) = %+v, expected %v/%v", tt.mode, d, tt.nextRound, tt.gameOver)
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
round:
  max_tries: 5
delays:
  windowed:
    next_round: 250ms
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Round.MaxTries != 5 {
		t.Errorf("MaxTries = %d, expected 5", cfg.Round.MaxTries)
	}
	if cfg.Round.Candidates != 5 {
		t.Errorf("Candidates = %d, expected default 5", cfg.Round.Candidates)
	}
	if cfg.Delays.Windowed.NextRound != 250*time.Millisecond {
		t.Errorf("windowed next_round = %v, expected 250ms", cfg.Delays.Windowed.NextRound)
	}
	if cfg.Delays.Text.NextRound != 3*time.Second {
		t.Errorf("text next_round = %v, expected default 3s", cfg.Delays.Text.NextRound)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero candidates", "round:\n  candidates: 0\n"},
		{"negative tries", "round:\n  max_tries: -1\n"},
		{"negative delay", "delays:\n  text:\n    game_over: -1s\n"},
		{"unknown difficulty", "difficulty: nightmare\n"},
		{"bad duration", "delays:\n  text:\n    next_round: soon\n"},
		{"not yaml", "round: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.data)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input      string
		preset     DifficultyPreset
		candidates int
	}{
		{"easy", DifficultyEasy, 3},
		{"Normal", DifficultyNormal, 5},
		{" HARD ", DifficultyHard, 8},
	}
	for _, tt := range tests {
		p, err := ParsePreset(tt.input)
		if err != nil {
			t.Fatalf("ParsePreset(%q) failed: %v", tt.input, err)
		}
		if p != tt.preset {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.input, p, tt.preset)
		}

		cfg := Default()
		ApplyPreset(&cfg, p)
		if cfg.Round.Candidates != tt.candidates || cfg.Difficulty != p {
			t.Errorf("ApplyPreset(%q) candidates = %d, expected %d", p, cfg.Round.Candidates, tt.candidates)
		}
	}

	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(fixed) should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quiz.yaml")
	if err := os.WriteFile(path, []byte("difficulty: hard\nlanguage: hi\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Language != "hi" || cfg.Difficulty != DifficultyHard {
		t.Errorf("Load() = %+v, expected hi/hard", cfg)
	}
	if cfg.Round.Candidates != 8 {
		t.Errorf("Load() candidates = %d, expected 8 for hard", cfg.Round.Candidates)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("round:\n  candidates: 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(invalid) should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}

	// Local file
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(work, LocalPath), []byte("round:\n  max_tries: 4\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg, _ = Load("")
	if cfg.Round.MaxTries != 4 {
		t.Errorf("MaxTries = %d, expected 4 from local config", cfg.Round.MaxTries)
	}

	// User file wins over local
	userPath := UserConfigPath()
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(userPath, []byte("round:\n  max_tries: 6\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg, _ = Load("")
	if cfg.Round.MaxTries != 6 {
		t.Errorf("MaxTries = %d, expected 6 from user config", cfg.Round.MaxTries)
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		difficulty DifficultyPreset
		candidates int
	}{
		{"easy preset", "difficulty: easy\n", DifficultyEasy, 3},
		{"hard preset", "difficulty: HARD\n", DifficultyHard, 8},
		{"explicit candidates win", "difficulty: hard\nround:\n  candidates: 4\n", DifficultyHard, 4},
		{"candidates without preset", "round:\n  candidates: 7\n", DifficultyNormal, 7},
		{"empty file", "", DifficultyNormal, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if cfg.Difficulty != tt.difficulty {
				t.Errorf("Parse() difficulty = %q, expected %q", cfg.Difficulty, tt.difficulty)
			}
			if cfg.Round.Candidates != tt.candidates {
				t.Errorf("Parse() candidates = %d, expected %d", cfg.Round.Candidates, tt.candidates)
			}
			if cfg.Round.MaxTries != 3 {
				t.Errorf("Parse() max tries = %d, expected 3", cfg.Round.MaxTries)
			}
		})
	}
}
