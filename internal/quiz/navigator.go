package quiz

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geoquiz/internal/content"
)

// Screen is the active state of the Navigator.
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenLanguageMenu
	ScreenScoreView
	ScreenInRound
	ScreenAwaitingNextRound
	ScreenGameOver
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "MainMenu"
	case ScreenLanguageMenu:
		return "LanguageMenu"
	case ScreenScoreView:
		return "ScoreView"
	case ScreenInRound:
		return "InRound"
	case ScreenAwaitingNextRound:
		return "AwaitingNextRound"
	case ScreenGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// MainMenuItem is an entry of the main menu.
type MainMenuItem int

const (
	MainPlay MainMenuItem = iota
	MainLanguage
	MainScore
	MainExit
)

// MainMenuItems lists the main menu in display order.
var MainMenuItems = []MainMenuItem{MainPlay, MainLanguage, MainScore, MainExit}

// Label returns the string key for the item's caption.
func (m MainMenuItem) Label() string {
	switch m {
	case MainPlay:
		return content.KeyPlayGame
	case MainLanguage:
		return content.KeyChangeLanguage
	case MainScore:
		return content.KeyViewScore
	default:
		return content.KeyExitGame
	}
}

// GameOverItem is an entry of the game over menu.
type GameOverItem int

const (
	GameOverPlayAgain GameOverItem = iota
	GameOverMainMenu
	GameOverExit
)

// GameOverItems lists the game over menu in display order.
var GameOverItems = []GameOverItem{GameOverPlayAgain, GameOverMainMenu, GameOverExit}

// Label returns the string key for the item's caption.
func (g GameOverItem) Label() string {
	switch g {
	case GameOverPlayAgain:
		return content.KeyPlayAgain
	case GameOverMainMenu:
		return content.KeyMainMenu
	default:
		return content.KeyExitGame
	}
}

// Store is the content the Navigator reads from.
type Store interface {
	CountrySource
	Name(key string, lang content.Language) (string, error)
	Flag(key string) (string, error)
	Facts(key string, lang content.Language) ([]string, error)
	Languages() []content.Language
	Strings(lang content.Language) (content.Strings, error)
}

// Options configures a Navigator. Zero values select the defaults.
type Options struct {
	CandidateCount int
	MaxTries       int
	NextRoundDelay time.Duration
	GameOverDelay  time.Duration
	Language       content.Language
	Rand           *rand.Rand
	Now            func() time.Time
	Logger         *log.Logger
}

// Navigator is the screen state machine. It owns the current session and
// round and routes input and timer events to them.
type Navigator struct {
	store   Store
	sched   Scheduler
	opts    Options
	rng     *rand.Rand
	now     func() time.Time
	logger  *log.Logger
	lang    content.Language
	strings content.Strings

	screen  Screen
	session *Session
	round   *Round

	seq     uint64
	pending Token
	handle  Handle
	exited  bool
}

// NewNavigator creates a Navigator on the main menu.
func NewNavigator(store Store, sched Scheduler, opts Options) (*Navigator, error) {
	if opts.CandidateCount < 1 {
		opts.CandidateCount = DefaultCandidateCount
	}
	if opts.MaxTries < 1 {
		opts.MaxTries = DefaultMaxTries
	}
	if opts.Language == "" {
		opts.Language = content.English
	}

	n := &Navigator{
		store:  store,
		sched:  sched,
		opts:   opts,
		rng:    opts.Rand,
		now:    opts.Now,
		logger: opts.Logger,
		screen: ScreenMainMenu,
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if n.now == nil {
		n.now = time.Now
	}
	if n.logger == nil {
		n.logger = log.New(io.Discard)
	}

	if err := n.setLanguage(opts.Language); err != nil {
		return nil, err
	}
	return n, nil
}

// SelectMain handles a main menu choice.
func (n *Navigator) SelectMain(item MainMenuItem) error {
	if n.screen != ScreenMainMenu {
		return n.invalid("select main menu item")
	}
	switch item {
	case MainPlay:
		return n.startSession()
	case MainLanguage:
		n.moveTo(ScreenLanguageMenu)
	case MainScore:
		n.moveTo(ScreenScoreView)
	case MainExit:
		n.exited = true
		n.logger.Debug("exit requested", "screen", n.screen)
	default:
		return fmt.Errorf("%w: unknown main menu item %d", ErrInvalidTransition, item)
	}
	return nil
}

// SelectLanguage switches the active language and returns to the main menu.
// The language is unchanged when its strings cannot be loaded.
func (n *Navigator) SelectLanguage(lang content.Language) error {
	if n.screen != ScreenLanguageMenu {
		return n.invalid("select language")
	}
	if err := n.setLanguage(lang); err != nil {
		return err
	}
	n.moveTo(ScreenMainMenu)
	return nil
}

// Back returns from the language menu or the score view to the main menu.
func (n *Navigator) Back() error {
	if n.screen != ScreenLanguageMenu && n.screen != ScreenScoreView {
		return n.invalid("back")
	}
	n.moveTo(ScreenMainMenu)
	return nil
}

// Acknowledge leaves the score view.
func (n *Navigator) Acknowledge() error {
	if n.screen != ScreenScoreView {
		return n.invalid("acknowledge")
	}
	n.moveTo(ScreenMainMenu)
	return nil
}

// Guess submits a guess for the current round. A correct guess schedules the
// next round; running out of tries schedules the game over screen.
func (n *Navigator) Guess(key string) (GuessOutcome, error) {
	switch n.screen {
	case ScreenInRound:
	case ScreenAwaitingNextRound:
		return GuessOutcome{}, ErrRoundAlreadyResolved
	default:
		return GuessOutcome{}, n.invalid("guess")
	}

	out, err := n.round.SubmitGuess(key, n.now())
	if err != nil {
		return GuessOutcome{}, err
	}
	n.logger.Debug("guess", "key", key, "outcome", out.Kind, "tries", out.TriesRemaining, "hint", out.HintIndex)

	switch out.Kind {
	case OutcomeCorrect:
		n.session.Apply(out)
		n.moveTo(ScreenAwaitingNextRound)
		n.schedule(TimerNextRound, n.opts.NextRoundDelay)
	case OutcomeExhausted:
		n.session.Apply(out)
		n.schedule(TimerGameOver, n.opts.GameOverDelay)
	}
	return out, nil
}

// Expire delivers a fired timer. Tokens that are not the pending one, or that
// arrive when the state machine has moved on, are ignored and reported as
// not applied. A next round that cannot start ends the session on GameOver
// and returns the error.
func (n *Navigator) Expire(tok Token) (bool, error) {
	if n.pending.Kind == TimerNone || tok != n.pending {
		n.logger.Debug("stale timer ignored", "token", tok, "pending", n.pending)
		return false, nil
	}
	n.clearPending()

	switch tok.Kind {
	case TimerNextRound:
		if n.screen != ScreenAwaitingNextRound {
			return false, nil
		}
		if err := n.startRound(); err != nil {
			n.session.Terminated = true
			n.moveTo(ScreenGameOver)
			return true, err
		}
		n.moveTo(ScreenInRound)
		return true, nil
	case TimerGameOver:
		if n.screen != ScreenInRound || n.session == nil || !n.session.Terminated {
			return false, nil
		}
		n.moveTo(ScreenGameOver)
		return true, nil
	}
	return false, nil
}

// SelectGameOver handles a game over menu choice.
func (n *Navigator) SelectGameOver(item GameOverItem) error {
	if n.screen != ScreenGameOver {
		return n.invalid("select game over item")
	}
	switch item {
	case GameOverPlayAgain:
		return n.startSession()
	case GameOverMainMenu:
		n.moveTo(ScreenMainMenu)
	case GameOverExit:
		n.exited = true
		n.logger.Debug("exit requested", "screen", n.screen)
	default:
		return fmt.Errorf("%w: unknown game over item %d", ErrInvalidTransition, item)
	}
	return nil
}

// Screen returns the active screen.
func (n *Navigator) Screen() Screen {
	return n.screen
}

// Exited reports whether the player chose Exit.
func (n *Navigator) Exited() bool {
	return n.exited
}

// Language returns the active language.
func (n *Navigator) Language() content.Language {
	return n.lang
}

// Languages returns the languages the player can choose from.
func (n *Navigator) Languages() []content.Language {
	return n.store.Languages()
}

// Strings returns the UI strings of the active language.
func (n *Navigator) Strings() content.Strings {
	return n.strings
}

// Text looks up a UI string in the active language. A missing string is
// logged and rendered as its key.
func (n *Navigator) Text(key string) string {
	v, err := n.strings.Lookup(key)
	if err != nil {
		n.logger.Warn("missing string", "key", key, "language", n.lang, "error", err)
		return key
	}
	return v
}

// Pending returns the token of the outstanding delayed transition.
func (n *Navigator) Pending() (Token, bool) {
	return n.pending, n.pending.Kind != TimerNone
}

// HasSession reports whether a session has been started.
func (n *Navigator) HasSession() bool {
	return n.session != nil
}

// MaxTries returns the number of tries each round starts with.
func (n *Navigator) MaxTries() int {
	return n.opts.MaxTries
}

func (n *Navigator) startSession() error {
	n.clearPending()
	prev := n.session
	n.session = NewSession()
	if err := n.startRound(); err != nil {
		n.session = prev
		return err
	}
	n.logger.Debug("session started", "language", n.lang, "candidates", n.opts.CandidateCount)
	n.moveTo(ScreenInRound)
	return nil
}

func (n *Navigator) startRound() error {
	r, err := StartRound(n.store, n.lang, n.opts.CandidateCount, n.opts.MaxTries, n.rng, n.now())
	if err != nil {
		return err
	}
	n.round = r
	n.logger.Debug("round started", "candidates", r.Candidates(), "hints", r.HintCount())
	return nil
}

func (n *Navigator) schedule(kind TimerKind, after time.Duration) {
	n.clearPending()
	n.seq++
	n.pending = Token{Kind: kind, Seq: n.seq}
	n.handle = n.sched.Schedule(after, n.pending)
	n.logger.Debug("timer scheduled", "token", n.pending, "after", after)
}

func (n *Navigator) clearPending() {
	if n.handle != nil {
		n.handle.Cancel()
	}
	n.handle = nil
	n.pending = Token{}
}

func (n *Navigator) setLanguage(lang content.Language) error {
	s, err := n.store.Strings(lang)
	if err != nil {
		return err
	}
	n.lang = lang
	n.strings = s
	n.logger.Debug("language set", "language", lang)
	return nil
}

func (n *Navigator) moveTo(s Screen) {
	if s != n.screen {
		n.logger.Debug("transition", "from", n.screen, "to", s)
	}
	n.screen = s
}

func (n *Navigator) invalid(event string) error {
	return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, n.screen)
}
