// Package storage provides SQLite-based persistence for finished quiz
// sessions. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished quiz session.
type SessionRecord struct {
	ID             string // Assigned by SaveSession when empty
	Player         string
	Language       string
	Difficulty     string
	Score          int
	RoundsPlayed   int
	CorrectGuesses int
	TotalTime      time.Duration // Time spent on correctly guessed rounds
	CreatedAt      time.Time
}

// Stats aggregates all stored sessions.
type Stats struct {
	Sessions       int
	BestScore      int
	TotalScore     int
	CorrectGuesses int
	RoundsPlayed   int
}

// AverageScore returns the mean score per session, or 0 with no sessions.
func (s Stats) AverageScore() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Sessions)
}

// DefaultPath returns the default database location.
func DefaultPath() string {
	return "~/.geoquiz/scores.db"
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			rounds_played INTEGER NOT NULL,
			correct_guesses INTEGER NOT NULL,
			total_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_language ON sessions(language, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session and returns its ID.
// A zero CreatedAt is stored as the current time.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (id, player, language, difficulty, score, rounds_played, correct_guesses, total_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Player,
		rec.Language,
		rec.Difficulty,
		rec.Score,
		rec.RoundsPlayed,
		rec.CorrectGuesses,
		rec.TotalTime.Milliseconds(),
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return rec.ID, nil
}

// TopSessions retrieves the N best sessions across all languages.
// Ties are broken by age, oldest first, then by insertion order.
func (s *Store) TopSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, player, language, difficulty, score, rounds_played, correct_guesses, total_ms, created_at
		 FROM sessions
		 ORDER BY score DESC, created_at ASC, rowid ASC
		 LIMIT ?`,
		limit,
	)
}

// TopSessionsByLanguage retrieves the N best sessions played in lang.
func (s *Store) TopSessionsByLanguage(lang string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, player, language, difficulty, score, rounds_played, correct_guesses, total_ms, created_at
		 FROM sessions
		 WHERE language = ?
		 ORDER BY score DESC, created_at ASC, rowid ASC
		 LIMIT ?`,
		lang, limit,
	)
}

// RecentSessions retrieves the N most recently finished sessions. Sessions
// saved within the same second come back in reverse insertion order.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT id, player, language, difficulty, score, rounds_played, correct_guesses, total_ms, created_at
		 FROM sessions
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// SessionByID retrieves one session. Returns nil if it does not exist.
func (s *Store) SessionByID(id string) (*SessionRecord, error) {
	records, err := s.query(
		`SELECT id, player, language, difficulty, score, rounds_played, correct_guesses, total_ms, created_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// HighScore returns the highest score, optionally restricted to a language.
// Returns 0 if no sessions exist.
func (s *Store) HighScore(lang string) (int, error) {
	var score sql.NullInt64
	var err error
	if lang == "" {
		err = s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&score)
	} else {
		err = s.db.QueryRow("SELECT MAX(score) FROM sessions WHERE language = ?", lang).Scan(&score)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates every stored session.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(score), 0),
		        COALESCE(SUM(score), 0),
		        COALESCE(SUM(correct_guesses), 0),
		        COALESCE(SUM(rounds_played), 0)
		 FROM sessions`,
	).Scan(&st.Sessions, &st.BestScore, &st.TotalScore, &st.CorrectGuesses, &st.RoundsPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// ClearSessions deletes all stored sessions.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

func (s *Store) query(q string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var totalMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Player,
			&r.Language,
			&r.Difficulty,
			&r.Score,
			&r.RoundsPlayed,
			&r.CorrectGuesses,
			&totalMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.TotalTime = time.Duration(totalMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
