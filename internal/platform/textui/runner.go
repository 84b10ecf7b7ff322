// Package textui is the turn-based text front end. It reads numbered choices
// line by line and blocks for the post-round delays, so it runs on any
// terminal or pipe.
package textui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geoquiz/internal/config"
	"github.com/vovakirdan/geoquiz/internal/content"
	"github.com/vovakirdan/geoquiz/internal/core"
	"github.com/vovakirdan/geoquiz/internal/quiz"
	"github.com/vovakirdan/geoquiz/internal/storage"
)

// errInvalid marks a line that was not a valid choice; the prompt repeats.
var errInvalid = errors.New("textui: invalid choice")

// Options configures a Runner.
type Options struct {
	Content quiz.Store
	Store   *storage.Store // Optional; finished sessions are saved here
	Runtime core.RuntimeConfig
	Quiz    config.QuizConfig
	Logger  *log.Logger
	In      io.Reader
	Out     io.Writer
}

// Runner drives a Navigator from line-based input.
type Runner struct {
	nav     *quiz.Navigator
	sched   *quiz.BlockingScheduler
	in      *bufio.Scanner
	out     io.Writer
	store   *storage.Store
	runtime core.RuntimeConfig
	quizCfg config.QuizConfig
	logger  *log.Logger
	st      styles
}

// New creates a Runner on the main menu.
func New(opts Options) (*Runner, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lang := opts.Runtime.Language
	if lang == "" {
		lang = opts.Quiz.Language
	}

	delays := opts.Quiz.DelaysFor(config.ModeText)
	sched := quiz.NewBlockingScheduler()
	nav, err := quiz.NewNavigator(opts.Content, sched, quiz.Options{
		CandidateCount: opts.Quiz.Round.Candidates,
		MaxTries:       opts.Quiz.Round.MaxTries,
		NextRoundDelay: delays.NextRound,
		GameOverDelay:  delays.GameOver,
		Language:       content.Language(lang),
		Rand:           rand.New(rand.NewSource(seed)),
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}

	return &Runner{
		nav:     nav,
		sched:   sched,
		in:      bufio.NewScanner(opts.In),
		out:     opts.Out,
		store:   opts.Store,
		runtime: opts.Runtime,
		quizCfg: opts.Quiz,
		logger:  logger,
		st:      newStyles(lipgloss.NewRenderer(opts.Out)),
	}, nil
}

// Navigator returns the state machine the runner drives.
func (r *Runner) Navigator() *quiz.Navigator {
	return r.nav
}

// Run plays until the player exits, the input ends or ctx is cancelled.
// End of input is a normal exit.
func (r *Runner) Run(ctx context.Context) error {
	for !r.nav.Exited() {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch r.nav.Screen() {
		case quiz.ScreenMainMenu:
			err = r.mainMenu()
		case quiz.ScreenLanguageMenu:
			err = r.languageMenu()
		case quiz.ScreenScoreView:
			err = r.scoreView()
		case quiz.ScreenInRound:
			err = r.round(ctx)
		case quiz.ScreenAwaitingNextRound:
			err = r.wait(ctx)
		case quiz.ScreenGameOver:
			err = r.gameOver()
		}

		switch {
		case errors.Is(err, io.EOF):
			r.goodbye()
			return nil
		case errors.Is(err, errInvalid):
			continue
		case err != nil:
			return err
		}
	}
	r.goodbye()
	return nil
}

func (r *Runner) text(key string) string {
	return r.nav.Text(key)
}

func (r *Runner) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Runner) goodbye() {
	r.println()
	r.println(r.st.title.Render(r.text(content.KeyGoodbye)))
}

// choose prints numbered options and reads a 0-based choice.
func (r *Runner) choose(prompt string, options []string) (int, error) {
	for i, o := range options {
		r.println(fmt.Sprintf("%d. %s", i+1, o))
	}
	fmt.Fprint(r.out, prompt)

	line, err := r.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		r.println(r.st.bad.Render(r.text(content.KeyInvalidInput)))
		return 0, errInvalid
	}
	if n < 1 || n > len(options) {
		r.println(r.st.bad.Render(r.text(content.KeyInvalidChoice)))
		return 0, errInvalid
	}
	return n - 1, nil
}

func (r *Runner) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.in.Text()), nil
}

func (r *Runner) mainMenu() error {
	r.println()
	r.println(r.st.title.Render("=== " + r.text(content.KeyGameTitle) + " ==="))
	r.println(r.st.subtitle.Render(r.text(content.KeyWelcome)))
	r.println()
	r.println(r.st.heading.Render(r.text(content.KeyMainMenu)))

	labels := make([]string, len(quiz.MainMenuItems))
	for i, item := range quiz.MainMenuItems {
		labels[i] = r.text(item.Label())
	}
	i, err := r.choose(r.text(content.KeyMenuChoice), labels)
	if err != nil {
		return err
	}
	return r.report(r.nav.SelectMain(quiz.MainMenuItems[i]))
}

func (r *Runner) languageMenu() error {
	r.println()
	r.println(r.st.heading.Render(r.text(content.KeySelectLanguage)))

	langs := r.nav.Languages()
	labels := make([]string, 0, len(langs)+1)
	for _, l := range langs {
		labels = append(labels, fmt.Sprintf("%s (%s)", l.DisplayName(), l.EnglishName()))
	}
	labels = append(labels, r.text(content.KeyBack))

	i, err := r.choose(r.text(content.KeyLanguageChoice), labels)
	if err != nil {
		return err
	}
	if i == len(langs) {
		return r.report(r.nav.Back())
	}
	return r.report(r.nav.SelectLanguage(langs[i]))
}

func (r *Runner) scoreView() error {
	r.println()
	r.println(r.st.heading.Render(r.text(content.KeyScoreSummary)))
	r.println(r.summaryTable(r.nav.SessionSnapshot()))

	if r.store != nil {
		r.println(r.st.heading.Render(r.text(content.KeyBestScores)))
		sessions, err := r.store.TopSessionsByLanguage(r.nav.Language().String(), 5)
		switch {
		case err != nil:
			r.logger.Warn("could not load sessions", "error", err)
			r.println(r.st.muted.Render(err.Error()))
		case len(sessions) == 0:
			r.println(r.st.muted.Render(r.text(content.KeyNoScores)))
		default:
			r.println(sessionsTable(sessions))
		}
	}

	fmt.Fprint(r.out, r.text(content.KeyContinuePrompt))
	if _, err := r.readLine(); err != nil {
		return err
	}
	return r.report(r.nav.Acknowledge())
}

func (r *Runner) round(ctx context.Context) error {
	snap, err := r.nav.RoundSnapshot()
	if err != nil {
		return err
	}
	// Resolved with a pending game over
	if snap.Resolved {
		return r.wait(ctx)
	}

	if !snap.HasOutcome {
		r.println()
		r.println(r.st.heading.Render("--- " + r.text(content.KeyNewRound) + " ---"))
		r.println(r.st.muted.Render(r.text(content.KeyInstructions)))
	}
	r.println()
	r.println(r.st.hint.Render(fmt.Sprintf("%s %d/%d: %s", r.text(content.KeyHint), snap.HintNumber, snap.HintCount, snap.Hint)))
	r.println(fmt.Sprintf("%s: %d", r.text(content.KeyTriesRemaining), snap.TriesRemaining))
	r.println(r.text(content.KeyOptions))

	labels := make([]string, len(snap.Candidates))
	for i, c := range snap.Candidates {
		labels[i] = content.FlagEmoji(c.Flag) + " " + c.Name
	}
	i, err := r.choose(r.text(content.KeyMakeGuess), labels)
	if err != nil {
		return err
	}

	out, err := r.nav.Guess(snap.Candidates[i].Key)
	if err != nil {
		return r.report(err)
	}
	return r.printOutcome(out)
}

func (r *Runner) printOutcome(out quiz.GuessOutcome) error {
	switch out.Kind {
	case quiz.OutcomeCorrect:
		snap, err := r.nav.RoundSnapshot()
		if err != nil {
			return err
		}
		r.println(r.st.good.Render(r.text(content.KeyCorrectGuess)))
		r.println(fmt.Sprintf("%s: %d", r.text(content.KeyPointsEarned), out.Points))
		r.println(fmt.Sprintf("%s: %.1f %s", r.text(content.KeyTimeTaken), out.Elapsed.Seconds(), r.text(content.KeySeconds)))
		r.println()
		r.println(r.st.heading.Render(fmt.Sprintf("%s %s %s", r.text(content.KeyCountryInfo), content.FlagEmoji(snap.TargetFlag), snap.TargetName)))
		for _, fact := range snap.Facts {
			r.println("  • " + fact)
		}
		r.println()
		r.println(r.st.muted.Render(r.text(content.KeyNextRound)))
	case quiz.OutcomeIncorrectWithHint:
		r.println(r.st.bad.Render(r.text(content.KeyWrongGuess)))
	case quiz.OutcomeIncorrectNoMoreHints:
		r.println(r.st.bad.Render(r.text(content.KeyWrongGuess) + " " + r.text(content.KeyNoMoreHints)))
	case quiz.OutcomeExhausted:
		snap, err := r.nav.RoundSnapshot()
		if err != nil {
			return err
		}
		r.println(r.st.bad.Render(r.text(content.KeyWrongGuess)))
		r.println(fmt.Sprintf("%s: %s %s", r.text(content.KeyCorrectAnswer), content.FlagEmoji(snap.TargetFlag), snap.TargetName))
	}
	return nil
}

// wait blocks for the pending transition and applies it.
func (r *Runner) wait(ctx context.Context) error {
	tok, ok, err := r.sched.Wait(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	applied, err := r.nav.Expire(tok)
	if err != nil {
		r.logger.Error("timer transition failed", "token", tok, "error", err)
		r.println(r.st.bad.Render(err.Error()))
	}
	if applied && r.nav.Screen() == quiz.ScreenGameOver {
		r.saveSession()
	}
	return nil
}

func (r *Runner) gameOver() error {
	snap := r.nav.SessionSnapshot()
	r.println()
	r.println(r.st.bad.Render("*** " + r.text(content.KeyGameOver) + " ***"))
	r.println(fmt.Sprintf("%s: %d", r.text(content.KeyFinalScore), snap.Score))
	r.println(fmt.Sprintf("%s: %d", r.text(content.KeyCountriesGuessed), snap.CorrectGuesses))
	r.println()

	labels := make([]string, len(quiz.GameOverItems))
	for i, item := range quiz.GameOverItems {
		labels[i] = r.text(item.Label())
	}
	i, err := r.choose(r.text(content.KeyMenuChoice), labels)
	if err != nil {
		return err
	}
	return r.report(r.nav.SelectGameOver(quiz.GameOverItems[i]))
}

func (r *Runner) saveSession() {
	if r.store == nil {
		return
	}
	snap := r.nav.SessionSnapshot()
	id, err := r.store.SaveSession(storage.SessionRecord{
		Player:         r.runtime.Player,
		Language:       r.nav.Language().String(),
		Difficulty:     string(r.quizCfg.Difficulty),
		Score:          snap.Score,
		RoundsPlayed:   snap.RoundsPlayed,
		CorrectGuesses: snap.CorrectGuesses,
		TotalTime:      snap.TotalElapsed,
	})
	if err != nil {
		r.logger.Warn("could not save session", "error", err)
		return
	}
	r.logger.Info("session saved", "id", id, "score", snap.Score)
}

// report prints a rejected action and keeps going. Navigator errors here are
// content problems or empty pools, which the player should see.
func (r *Runner) report(err error) error {
	if err == nil {
		return nil
	}
	r.logger.Warn("action rejected", "screen", r.nav.Screen(), "error", err)
	r.println(r.st.bad.Render(err.Error()))
	if errors.Is(err, quiz.ErrEmptyCandidatePool) {
		return err
	}
	return nil
}
