// Package content is the read-only data behind the quiz: countries with
// their localized names, hints and facts, and the UI string tables for each
// supported language.
package content

import "errors"

var (
	// ErrMissingTranslation is returned when a lookup asks for a language the
	// data does not provide.
	ErrMissingTranslation = errors.New("missing translation")

	// ErrUnknownCountry is returned for a country key that is not in the catalog.
	ErrUnknownCountry = errors.New("unknown country")
)

// Country is one entry of the country table. It is immutable once loaded.
type Country struct {
	Key   string                `json:"-" yaml:"-"`
	Names map[Language]string   `json:"names" yaml:"names"`
	Flag  string                `json:"flag" yaml:"flag"`
	Hints map[Language][]string `json:"hints" yaml:"hints"`
	Facts map[Language][]string `json:"info" yaml:"info"`
}

// UI string keys shared by every language table.
const (
	KeyGameTitle        = "game_title"
	KeyWelcome          = "welcome_message"
	KeyMainMenu         = "main_menu"
	KeyPlayGame         = "play_game"
	KeyChangeLanguage   = "change_language"
	KeyViewScore        = "view_score"
	KeyExitGame         = "exit_game"
	KeyMenuChoice       = "menu_choice"
	KeySelectLanguage   = "select_language"
	KeyLanguageChoice   = "language_choice"
	KeyBack             = "back"
	KeyNewRound         = "new_round"
	KeyInstructions     = "instructions"
	KeyOptions          = "options"
	KeyHint             = "hint"
	KeyMakeGuess        = "make_guess"
	KeyInvalidChoice    = "invalid_choice"
	KeyInvalidInput     = "invalid_input"
	KeyTriesRemaining   = "tries_remaining"
	KeyCorrectGuess     = "correct_guess"
	KeyWrongGuess       = "wrong_guess"
	KeyNoMoreHints      = "no_more_hints"
	KeyCorrectAnswer    = "correct_answer"
	KeyPointsEarned     = "points_earned"
	KeyTimeTaken        = "time_taken"
	KeySeconds          = "seconds"
	KeyCountryInfo      = "country_info"
	KeyNextRound        = "next_round"
	KeyScoreSummary     = "score_summary"
	KeyTotalScore       = "total_score"
	KeyRoundsPlayed     = "rounds_played"
	KeyAvgTime          = "avg_time"
	KeyContinuePrompt   = "continue_prompt"
	KeyGameOver         = "game_over"
	KeyFinalScore       = "final_score"
	KeyCountriesGuessed = "countries_guessed"
	KeyPlayAgain        = "play_again"
	KeyGoodbye          = "goodbye_message"
	KeyBestScores       = "best_scores"
	KeyNoScores         = "no_scores"
)
