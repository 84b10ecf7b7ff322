package core

// RuntimeConfig contains the settings a presentation layer passes to a quiz
// session when it starts.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	Seed     int64  // RNG seed for candidate draws (0 = time based)
	Language string // Initial language code
	Player   string // Name recorded with finished sessions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Seed:     0, // 0 means use current time in platform layer
		Language: "en",
	}
}
