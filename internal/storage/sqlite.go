// Package storage provides SQLite-based persistence for the player's
// progress snapshot and mini-game high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single mini-game high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS progress (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			credits INTEGER NOT NULL,
			level INTEGER NOT NULL,
			experience INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			onboarded INTEGER NOT NULL DEFAULT 0,
			last_played DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS completed_missions (
			mission_id TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS unlocked_achievements (
			achievement_id TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
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

// SaveProgress writes the full progress snapshot, replacing the previous
// one. The colony is not stored: it is re-derived on load.
func (s *Store) SaveProgress(p economy.UserProgress) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO progress (id, credits, level, experience, difficulty, onboarded, last_played)
		 VALUES (1, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   credits = excluded.credits,
		   level = excluded.level,
		   experience = excluded.experience,
		   difficulty = excluded.difficulty,
		   onboarded = excluded.onboarded,
		   last_played = excluded.last_played`,
		p.Credits, p.Level, p.Experience, string(p.CurrentDifficulty),
		boolToInt(p.HasCompletedOnboarding), p.LastPlayed.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM completed_missions"); err != nil {
		return fmt.Errorf("storage: cannot clear mission set: %w", err)
	}
	for id := range p.CompletedMissions {
		if _, err := tx.Exec("INSERT INTO completed_missions (mission_id) VALUES (?)", id); err != nil {
			return fmt.Errorf("storage: cannot save mission id: %w", err)
		}
	}

	if _, err := tx.Exec("DELETE FROM unlocked_achievements"); err != nil {
		return fmt.Errorf("storage: cannot clear achievement set: %w", err)
	}
	for id := range p.UnlockedAchievements {
		if _, err := tx.Exec("INSERT INTO unlocked_achievements (achievement_id) VALUES (?)", id); err != nil {
			return fmt.Errorf("storage: cannot save achievement id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit snapshot: %w", err)
	}
	return nil
}

// LoadProgress reads the progress snapshot. Returns (nil, nil) when no
// snapshot exists: absence is "first run", not an error.
func (s *Store) LoadProgress() (*economy.UserProgress, error) {
	p := economy.NewUserProgress()

	var difficulty string
	var onboarded int
	var lastPlayed any
	err := s.db.QueryRow(
		"SELECT credits, level, experience, difficulty, onboarded, last_played FROM progress WHERE id = 1",
	).Scan(&p.Credits, &p.Level, &p.Experience, &difficulty, &onboarded, &lastPlayed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load progress: %w", err)
	}

	p.CurrentDifficulty = economy.DifficultyTier(difficulty)
	if !p.CurrentDifficulty.Valid() {
		p.CurrentDifficulty = economy.DifficultyBeginner
	}
	p.HasCompletedOnboarding = onboarded != 0
	p.LastPlayed = parseStoredTime(lastPlayed)

	rows, err := s.db.Query("SELECT mission_id FROM completed_missions")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load mission set: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan mission id: %w", err)
		}
		p.CompletedMissions[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	arows, err := s.db.Query("SELECT achievement_id FROM unlocked_achievements")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load achievement set: %w", err)
	}
	defer arows.Close()
	for arows.Next() {
		var id string
		if err := arows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan achievement id: %w", err)
		}
		p.UnlockedAchievements[id] = true
	}
	if err := arows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return p, nil
}

// ClearProgress deletes the snapshot. Mini-game scores survive a reset.
func (s *Store) ClearProgress() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, stmt := range []string{
		"DELETE FROM progress",
		"DELETE FROM completed_missions",
		"DELETE FROM unlocked_achievements",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("storage: cannot clear progress: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// SaveScore records a new mini-game score.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given mini-game,
// ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseStoredTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given mini-game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseStoredTime handles both time.Time and string datetime values coming
// back from the driver.
func parseStoredTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
