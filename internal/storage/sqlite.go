// Package storage provides SQLite-based persistence for player preferences
// and round history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/shiraezri/hanging-man/internal/games/hangman"
	"github.com/shiraezri/hanging-man/internal/games/hangman/engine"
)

// Preference keys.
const (
	KeyPlayerName = engine.PlayerNameKey
	KeyWordLength = engine.WordLengthKey
	KeyTotalScore = engine.TotalScoreKey
)

// Store manages the SQLite database connection for preferences and history.
type Store struct {
	db *sql.DB
}

// RoundRecord represents one finished round.
type RoundRecord struct {
	ID           string
	PlayerName   string
	Word         string
	WordLength   int
	Outcome      string // "won", "lost" or "abandoned"
	WrongGuesses int
	Points       int
	CreatedAt    time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Single writer keeps SQLite from reporting "database is locked".
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the stored value for key and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(key string) error {
	if _, err := s.db.Exec("DELETE FROM preferences WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot remove %s: %w", key, err)
	}
	return nil
}

// GetInt returns the integer stored under key, or def if missing.
// A value that does not parse as an integer is treated as missing.
func (s *Store) GetInt(key string, def int) (int, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return def, err
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return def, nil
	}
	return n, nil
}

// SetInt stores an integer under key.
func (s *Store) SetInt(key string, value int) error {
	return s.Set(key, strconv.Itoa(value))
}

// PlayerName returns the stored nickname, or "" when none is set.
func (s *Store) PlayerName() (string, error) {
	name, _, err := s.Get(KeyPlayerName)
	return name, err
}

// SetPlayerName stores the nickname. Validation is the caller's job.
func (s *Store) SetPlayerName(name string) error {
	return s.Set(KeyPlayerName, name)
}

// ClearPlayerName removes any stored nickname.
func (s *Store) ClearPlayerName() error {
	return s.Remove(KeyPlayerName)
}

// WordLength returns the selected word length, or def if unset.
func (s *Store) WordLength(def int) (int, error) {
	return s.GetInt(KeyWordLength, def)
}

// SetWordLength stores the selected word length.
func (s *Store) SetWordLength(n int) error {
	return s.SetInt(KeyWordLength, n)
}

// TotalScore returns the lifetime score, 0 if unset.
func (s *Store) TotalScore() (int, error) {
	return s.GetInt(KeyTotalScore, 0)
}

// SetTotalScore stores the lifetime score.
func (s *Store) SetTotalScore(total int) error {
	return s.SetInt(KeyTotalScore, total)
}

// SaveRound records a finished round. An empty ID gets a fresh UUID.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO rounds (id, player_name, word, word_length, outcome, wrong_guesses, points)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.PlayerName, r.Word, r.WordLength, r.Outcome, r.WrongGuesses, r.Points,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r.ID, nil
}

// SaveRoundResult stores a round reported by the game session.
func (s *Store) SaveRoundResult(r hangman.RoundResult) error {
	_, err := s.SaveRound(RoundRecord{
		PlayerName:   r.PlayerName,
		Word:         r.Word,
		WordLength:   r.WordLength,
		Outcome:      r.Outcome,
		WrongGuesses: r.WrongGuesses,
		Points:       r.Points,
	})
	return err
}

var (
	_ hangman.Preferences   = (*Store)(nil)
	_ hangman.RoundRecorder = (*Store)(nil)
)

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player_name, word, word_length, outcome, wrong_guesses, points, created_at
		 FROM rounds
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PlayerName, &r.Word, &r.WordLength, &r.Outcome,
			&r.WrongGuesses, &r.Points, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RoundStats contains aggregated statistics over all recorded rounds.
type RoundStats struct {
	Played     int
	Won        int
	Lost       int
	Points     int
	LastPlayed time.Time
}

// WinRate returns won/played, 0 when nothing was played.
func (st RoundStats) WinRate() float64 {
	if st.Played == 0 {
		return 0
	}
	return float64(st.Won) / float64(st.Played)
}

// Stats aggregates the round history.
func (s *Store) Stats() (*RoundStats, error) {
	stats := &RoundStats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(points), 0),
		        MAX(created_at)
		 FROM rounds`,
	).Scan(&stats.Played, &stats.Won, &stats.Lost, &stats.Points, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRounds deletes the whole round history.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles SQLite datetimes returned as time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
