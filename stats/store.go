// Package stats persists finished-game outcomes to SQLite so simulation
// runs can be aggregated across instances and process restarts.
package stats

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Outcome is one finished game as recorded by a simulation instance.
type Outcome struct {
	Instance    int
	Winner      int
	CardsPlayed int
	Reward      int
	Duration    time.Duration
}

// Summary aggregates the recorded games for one seat of interest.
type Summary struct {
	Games       int
	Wins        int
	AvgCards    float64
	TotalReward int
}

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// WAL mode so parallel instances can record while summaries read
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS games (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			instance     INTEGER NOT NULL,
			winner       INTEGER NOT NULL,
			cards_played INTEGER NOT NULL,
			reward       INTEGER NOT NULL,
			duration_ms  INTEGER NOT NULL,
			played_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Record(outcome Outcome) error {
	_, err := s.db.Exec(
		"INSERT INTO games (instance, winner, cards_played, reward, duration_ms) VALUES (?, ?, ?, ?, ?)",
		outcome.Instance,
		outcome.Winner,
		outcome.CardsPlayed,
		outcome.Reward,
		outcome.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("record game: %w", err)
	}
	return nil
}

func (s *Store) Summarize(seat int) (Summary, error) {
	row := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(AVG(cards_played), 0),
		       COALESCE(SUM(reward), 0)
		FROM games
	`, seat)
	var summary Summary
	if err := row.Scan(&summary.Games, &summary.Wins, &summary.AvgCards, &summary.TotalReward); err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	return summary, nil
}
