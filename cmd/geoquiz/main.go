// geoquiz is a country guessing quiz for the terminal.
//
// Usage:
//
//	geoquiz                  - Play in the full-screen terminal UI
//	geoquiz play             - Same as above
//	geoquiz text             - Play the line-based text version
//	geoquiz serve            - Start SSH server for remote play
//	geoquiz scores           - Show finished sessions
//	geoquiz countries        - List the countries in the data set
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.geoquiz/scores.db)
//	--lang <code>         - Initial language (en, hi, gu, ...)
//	--content <dir>       - Load countries and strings from a directory
//	--config <path>       - Path to custom quiz config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Write debug logs to a file
//
// GEOQUIZ_DB, GEOQUIZ_LANG, GEOQUIZ_CONTENT and GEOQUIZ_CONFIG provide
// defaults for the matching flags and may be set in a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagLang       string
	flagContent    string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagPlayer     string
)

// envFlags maps persistent flags to the environment variables that provide
// their defaults.
var envFlags = map[string]string{
	"db":      "GEOQUIZ_DB",
	"lang":    "GEOQUIZ_LANG",
	"content": "GEOQUIZ_CONTENT",
	"config":  "GEOQUIZ_CONFIG",
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geoquiz",
	Short: "GeoQuiz - Guess countries from hints in your terminal",
	Long: `GeoQuiz shows hints about a hidden country and asks you to pick it from
a handful of candidates. Fewer hints and faster answers score more.

Available commands:
  play       - Full-screen terminal UI (default)
  text       - Line-based text version
  serve      - Start SSH server for remote play
  scores     - View finished sessions
  countries  - List the countries in the data set

Examples:
  geoquiz
  geoquiz text --lang hi
  geoquiz play --difficulty hard
  geoquiz serve --ssh :2222
  geoquiz scores --lang en`,
	PersistentPreRunE: applyEnvDefaults,
	RunE:              runPlay,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to session database (default from config, then ~/.geoquiz/scores.db)")
	pf.StringVar(&flagLang, "lang", "", "Initial language code or English name")
	pf.StringVar(&flagContent, "content", "", "Directory with countries and string tables")
	pf.StringVar(&flagConfig, "config", "", "Path to custom quiz config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	pf.StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name recorded with sessions")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(countriesCmd)
}

// applyEnvDefaults fills unset flags from the environment.
func applyEnvDefaults(cmd *cobra.Command, _ []string) error {
	for name, env := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		f := cmd.Flag(name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}
