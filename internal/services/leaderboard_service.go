package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lparra/snake-hub-be/internal/models"
)

var (
	ErrInvalidGameMode = errors.New("invalid game mode")
	ErrNegativeScore   = errors.New("score must be non-negative")
)

// LeaderboardServiceProvider defines the interface for the score ledger.
type LeaderboardServiceProvider interface {
	Submit(username string, score int, mode models.GameMode) (models.LeaderboardEntry, error)
	List(mode, username string) ([]models.LeaderboardEntry, error)
}

// LeaderboardService provides business logic for the append-only score
// ledger. Entries are never edited or deleted.
type LeaderboardService struct {
	db *sql.DB
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(db *sql.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// Submit appends one entry for the given username, stamped with the
// server's current calendar date.
func (s *LeaderboardService) Submit(username string, score int, mode models.GameMode) (models.LeaderboardEntry, error) {
	if !mode.Valid() {
		return models.LeaderboardEntry{}, ErrInvalidGameMode
	}
	if score < 0 {
		return models.LeaderboardEntry{}, ErrNegativeScore
	}

	entry := models.LeaderboardEntry{
		ID:       uuid.New().String(),
		Username: username,
		Score:    score,
		Mode:     mode,
		Date:     time.Now().Format("2006-01-02"),
	}

	stmt, err := s.db.Prepare("INSERT INTO leaderboard_entries(id, username, score, mode, date) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.LeaderboardEntry{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(entry.ID, entry.Username, entry.Score, string(entry.Mode), entry.Date); err != nil {
		return models.LeaderboardEntry{}, err
	}
	return entry, nil
}

// List returns entries matching the optional mode and username filters
// (AND-combined, empty string means no filter), ordered by score
// descending. Tie order follows storage iteration and is not guaranteed.
func (s *LeaderboardService) List(mode, username string) ([]models.LeaderboardEntry, error) {
	query := "SELECT id, username, score, mode, date FROM leaderboard_entries"
	var where []string
	var args []any
	if mode != "" {
		where = append(where, "mode = ?")
		args = append(args, mode)
	}
	if username != "" {
		where = append(where, "username = ?")
		args = append(args, username)
	}
	for i, clause := range where {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY score DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.ID, &entry.Username, &entry.Score, &entry.Mode, &entry.Date); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
