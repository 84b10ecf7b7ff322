package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geoquiz/internal/config"
	"github.com/vovakirdan/geoquiz/internal/content"
	"github.com/vovakirdan/geoquiz/internal/core"
	"github.com/vovakirdan/geoquiz/internal/quiz"
	"github.com/vovakirdan/geoquiz/internal/storage"
)

const backKey = "back"

// AppOptions configures a quiz program.
type AppOptions struct {
	Content quiz.Store
	Store   *storage.Store // Optional; finished sessions are saved here
	Runtime core.RuntimeConfig
	Quiz    config.QuizConfig
	Logger  *log.Logger
}

// AppModel is the Bubble Tea model for a whole quiz session: menus, rounds,
// score view and game over. It forwards every event to the Navigator and
// renders whichever screen is active.
type AppModel struct {
	nav      *quiz.Navigator
	sched    *teaScheduler
	store    *storage.Store
	runtime  core.RuntimeConfig
	quizCfg  config.QuizConfig
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	theme    Theme
	scores   ScoreboardModel
	cursor   int
	notice   string // Last error, shown under the options
	lastSave string // ID of the most recently saved session
	quitting bool
}

// NewAppModel creates the model on the main menu.
func NewAppModel(opts AppOptions) (AppModel, error) {
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
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}

	delays := opts.Quiz.DelaysFor(config.ModeWindowed)
	sched := newTeaScheduler()
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
		return AppModel{}, err
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return AppModel{
		nav:     nav,
		sched:   sched,
		store:   opts.Store,
		runtime: opts.Runtime,
		quizCfg: opts.Quiz,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    h,
		theme:   DefaultTheme(),
		scores:  NewScoreboardModel(opts.Store, nav.Languages(), opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}, nil
}

// Init initializes the model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.scores.Resize(msg.Width, msg.Height)
		return m, nil

	case TimerMsg:
		prev := m.nav.Screen()
		if _, err := m.nav.Expire(msg.Token); err != nil {
			m.notice = err.Error()
			m.logger.Error("timer transition failed", "token", msg.Token, "error", err)
		}
		m.afterTransition(prev)
		return m, m.sched.Flush()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// The score table scrolls and switches language tabs
	if m.nav.Screen() == quiz.ScreenScoreView {
		sk := m.scores.keys
		if key.Matches(msg, sk.Up, sk.Down, sk.NextLang, sk.PrevLang) {
			updated, cmd := m.scores.Update(msg)
			if sb, ok := updated.(ScoreboardModel); ok {
				m.scores = sb
			}
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		return m.activate(m.cursor)
	case key.Matches(msg, m.keys.Pick):
		return m.activate(pickIndex(msg))
	case key.Matches(msg, m.keys.Back):
		return m.back()
	}
	return m, nil
}

// handleMouse activates the button under a left click.
func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if i := m.layout().hit(msg.X, msg.Y); i >= 0 {
		return m.activate(i)
	}
	return m, nil
}

// activate selects option i of the active screen.
func (m AppModel) activate(i int) (tea.Model, tea.Cmd) {
	opts := m.options()
	if i < 0 || i >= len(opts) {
		return m, nil
	}
	m.cursor = i
	prev := m.nav.Screen()

	var err error
	switch prev {
	case quiz.ScreenMainMenu:
		err = m.nav.SelectMain(quiz.MainMenuItems[i])
	case quiz.ScreenLanguageMenu:
		if opts[i].Key == backKey {
			err = m.nav.Back()
		} else {
			err = m.nav.SelectLanguage(content.Language(opts[i].Key))
		}
	case quiz.ScreenScoreView:
		err = m.nav.Acknowledge()
	case quiz.ScreenInRound:
		_, err = m.nav.Guess(opts[i].Key)
	case quiz.ScreenGameOver:
		err = m.nav.SelectGameOver(quiz.GameOverItems[i])
	}

	m.notice = ""
	if err != nil {
		m.notice = err.Error()
		m.logger.Warn("action rejected", "screen", prev, "option", opts[i].Key, "error", err)
	}
	m.afterTransition(prev)

	if m.nav.Exited() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, m.sched.Flush()
}

// back handles the back key where the active screen allows it.
func (m AppModel) back() (tea.Model, tea.Cmd) {
	prev := m.nav.Screen()
	var err error
	switch prev {
	case quiz.ScreenLanguageMenu, quiz.ScreenScoreView:
		err = m.nav.Back()
	case quiz.ScreenGameOver:
		err = m.nav.SelectGameOver(quiz.GameOverMainMenu)
	default:
		return m, nil
	}
	if err != nil {
		m.notice = err.Error()
	}
	m.afterTransition(prev)
	return m, m.sched.Flush()
}

// afterTransition resets the cursor on screen changes, refreshes the score
// table and saves a session when it reaches game over.
func (m *AppModel) afterTransition(prev quiz.Screen) {
	cur := m.nav.Screen()
	if cur == prev {
		if n := len(m.options()); m.cursor >= n {
			m.cursor = core.Clamp(n-1, 0, n)
		}
		return
	}

	m.cursor = 0
	switch cur {
	case quiz.ScreenScoreView:
		m.scores.Reload()
	case quiz.ScreenGameOver:
		m.saveSession()
	}
}

// saveSession records the finished session. GameOver is entered once per
// session, so each session is saved once.
func (m *AppModel) saveSession() {
	if m.store == nil {
		return
	}
	snap := m.nav.SessionSnapshot()
	id, err := m.store.SaveSession(storage.SessionRecord{
		Player:         m.runtime.Player,
		Language:       m.nav.Language().String(),
		Difficulty:     string(m.quizCfg.Difficulty),
		Score:          snap.Score,
		RoundsPlayed:   snap.RoundsPlayed,
		CorrectGuesses: snap.CorrectGuesses,
		TotalTime:      snap.TotalElapsed,
	})
	if err != nil {
		m.notice = err.Error()
		m.logger.Warn("could not save session", "error", err)
		return
	}
	m.lastSave = id
	m.logger.Info("session saved", "id", id, "score", snap.Score, "player", m.runtime.Player)
}

// options returns the selectable buttons of the active screen, without
// bounds.
func (m AppModel) options() []Button {
	var opts []Button
	switch m.nav.Screen() {
	case quiz.ScreenMainMenu:
		for i, item := range quiz.MainMenuItems {
			opts = append(opts, Button{Label: m.nav.Text(item.Label()), Key: strconv.Itoa(i)})
		}
	case quiz.ScreenLanguageMenu:
		for _, lang := range m.nav.Languages() {
			label := lang.DisplayName()
			if en := lang.EnglishName(); en != label {
				label += " (" + en + ")"
			}
			opts = append(opts, Button{Label: label, Key: lang.String()})
		}
		opts = append(opts, Button{Label: m.nav.Text(content.KeyBack), Key: backKey})
	case quiz.ScreenScoreView:
		opts = append(opts, Button{Label: m.nav.Text(content.KeyBack), Key: backKey})
	case quiz.ScreenInRound:
		snap, err := m.nav.RoundSnapshot()
		if err != nil || snap.Resolved {
			return nil
		}
		for _, c := range snap.Candidates {
			opts = append(opts, Button{Label: c.Name, Key: c.Key, Flag: c.Flag})
		}
	case quiz.ScreenGameOver:
		for i, item := range quiz.GameOverItems {
			opts = append(opts, Button{Label: m.nav.Text(item.Label()), Key: strconv.Itoa(i)})
		}
	}
	return opts
}

// layout builds the active screen. Buttons are numbered in option order.
func (m AppModel) layout() *frame {
	f := newFrame(m.runtime.ScreenW, m.theme)
	t := m.nav.Text

	f.blank()
	f.text(t(content.KeyGameTitle), m.theme.Title)
	f.blank()

	switch m.nav.Screen() {
	case quiz.ScreenMainMenu:
		f.text(t(content.KeyWelcome), m.theme.Subtitle)
		f.blank()
		f.text(t(content.KeyMainMenu), m.theme.Muted)
	case quiz.ScreenLanguageMenu:
		f.text(t(content.KeySelectLanguage), m.theme.Subtitle)
	case quiz.ScreenScoreView:
		m.summaryView(f)
	case quiz.ScreenInRound, quiz.ScreenAwaitingNextRound:
		m.roundView(f)
	case quiz.ScreenGameOver:
		m.gameOverView(f)
	}

	f.blank()
	for i, o := range m.options() {
		f.button(fmt.Sprintf("%d. %s", i+1, o.Label), o.Key, o.Flag, i == m.cursor)
	}

	if m.nav.Screen() == quiz.ScreenScoreView {
		f.blank()
		f.text(t(content.KeyBestScores), m.theme.Subtitle)
		f.block(m.scores.Panel())
	}

	if m.notice != "" {
		f.blank()
		f.text(m.notice, m.theme.Error)
	}
	return f
}

func (m AppModel) roundView(f *frame) {
	t := m.nav.Text
	snap, err := m.nav.RoundSnapshot()
	if err != nil {
		f.text(err.Error(), m.theme.Error)
		return
	}
	sess := m.nav.SessionSnapshot()

	f.text(fmt.Sprintf("%s: %d   %s: %d/%d",
		t(content.KeyTotalScore), sess.Score,
		t(content.KeyTriesRemaining), snap.TriesRemaining, snap.MaxTries), m.theme.Score)
	f.blank()
	f.text(fmt.Sprintf("%s %d/%d: %s", t(content.KeyHint), snap.HintNumber, snap.HintCount, snap.Hint), m.theme.Hint)

	if !snap.HasOutcome {
		f.blank()
		f.text(t(content.KeyInstructions), m.theme.Muted)
		return
	}

	f.blank()
	out := snap.Outcome
	switch out.Kind {
	case quiz.OutcomeCorrect:
		f.text(t(content.KeyCorrectGuess), m.theme.Good)
		f.text(fmt.Sprintf("%s: %d   %s: %.1f %s",
			t(content.KeyPointsEarned), out.Points,
			t(content.KeyTimeTaken), out.Elapsed.Seconds(), t(content.KeySeconds)), m.theme.Text)
		f.blank()
		f.text(fmt.Sprintf("%s %s %s", t(content.KeyCountryInfo), content.FlagEmoji(snap.TargetFlag), snap.TargetName), m.theme.Subtitle)
		for _, fact := range snap.Facts {
			f.text("• "+fact, m.theme.Text)
		}
		f.blank()
		f.text(t(content.KeyNextRound), m.theme.Muted)
	case quiz.OutcomeIncorrectWithHint:
		f.text(fmt.Sprintf("%s %s: %d", t(content.KeyWrongGuess), t(content.KeyTriesRemaining), out.TriesRemaining), m.theme.Bad)
	case quiz.OutcomeIncorrectNoMoreHints:
		f.text(fmt.Sprintf("%s %s %s: %d", t(content.KeyWrongGuess), t(content.KeyNoMoreHints),
			t(content.KeyTriesRemaining), out.TriesRemaining), m.theme.Bad)
	case quiz.OutcomeExhausted:
		f.text(t(content.KeyWrongGuess), m.theme.Bad)
		f.text(fmt.Sprintf("%s: %s %s", t(content.KeyCorrectAnswer), content.FlagEmoji(snap.TargetFlag), snap.TargetName), m.theme.Text)
	}
}

func (m AppModel) gameOverView(f *frame) {
	t := m.nav.Text
	sess := m.nav.SessionSnapshot()
	f.text(t(content.KeyGameOver), m.theme.Bad)
	f.blank()
	f.text(fmt.Sprintf("%s: %d", t(content.KeyFinalScore), sess.Score), m.theme.Score)
	f.text(fmt.Sprintf("%s: %d", t(content.KeyCountriesGuessed), sess.CorrectGuesses), m.theme.Text)
}

func (m AppModel) summaryView(f *frame) {
	t := m.nav.Text
	sess := m.nav.SessionSnapshot()
	f.text(t(content.KeyScoreSummary), m.theme.Subtitle)
	f.blank()
	f.text(fmt.Sprintf("%s: %d", t(content.KeyTotalScore), sess.Score), m.theme.Score)
	f.text(fmt.Sprintf("%s: %d", t(content.KeyRoundsPlayed), sess.RoundsPlayed), m.theme.Text)
	avg := "-"
	if sess.HasAverage {
		avg = fmt.Sprintf("%.1f %s", sess.AverageTime.Seconds(), t(content.KeySeconds))
	}
	f.text(fmt.Sprintf("%s: %s", t(content.KeyAvgTime), avg), m.theme.Text)
}

// View renders the active screen and the key help.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.layout().String() + "\n\n" + centerText(helpStyle.Render(m.help.View(m.keys)), m.runtime.ScreenW)
}

// Navigator exposes the state machine, mainly for tests and callers that
// inspect the outcome after the program ends.
func (m AppModel) Navigator() *quiz.Navigator {
	return m.nav
}

// LastSavedID returns the ID of the last session written to storage.
func (m AppModel) LastSavedID() string {
	return m.lastSave
}

// IsQuitting returns true if user requested to quit.
func (m AppModel) IsQuitting() bool {
	return m.quitting
}

// RunQuiz runs the quiz in the terminal and returns the statistics of the
// last session played.
func RunQuiz(opts AppOptions) (quiz.SessionSnapshot, error) {
	model, err := NewAppModel(opts)
	if err != nil {
		return quiz.SessionSnapshot{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return quiz.SessionSnapshot{}, err
	}

	m, ok := finalModel.(AppModel)
	if !ok {
		return quiz.SessionSnapshot{}, nil
	}
	return m.nav.SessionSnapshot(), nil
}
