package repository

import (
	"database/sql"
	"fmt"
	"time"

	"spelltest/internal/database"
	"spelltest/internal/models"
)

// StatRepository handles database operations for spelling test results.
// Stat rows are append-only: sessions write them once and nothing edits
// them afterwards.
type StatRepository struct {
	db *database.DB
}

// NewStatRepository creates a new stat repository
func NewStatRepository(db *database.DB) *StatRepository {
	return &StatRepository{db: db}
}

// AddStat appends a completed test result and returns its ID
func (r *StatRepository) AddStat(stat *models.SpellingListStat) (int64, error) {
	id, err := r.db.ExecReturningID(
		"INSERT INTO spelling_list_stats (list_id, date, elapsed_time, number_correct, number_incorrect) VALUES (?, ?, ?, ?, ?)",
		stat.ListID, stat.Date.UnixMilli(), stat.ElapsedTime, stat.NumberCorrect, stat.NumberIncorrect,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert stat: %w", err)
	}
	stat.ID = id
	return id, nil
}

// GetStat retrieves a test result by ID, returning nil when no such row
// exists
func (r *StatRepository) GetStat(statID int64) (*models.SpellingListStat, error) {
	query := `
		SELECT id, list_id, date, elapsed_time, number_correct, number_incorrect
		FROM spelling_list_stats
		WHERE id = ?
	`
	stat := &models.SpellingListStat{}
	var dateMillis int64
	err := r.db.QueryRow(query, statID).Scan(
		&stat.ID,
		&stat.ListID,
		&dateMillis,
		&stat.ElapsedTime,
		&stat.NumberCorrect,
		&stat.NumberIncorrect,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stat: %w", err)
	}

	stat.Date = time.UnixMilli(dateMillis)

	return stat, nil
}

// GetListStats retrieves all test results for a spelling list, most recent
// first
func (r *StatRepository) GetListStats(listID int64) ([]models.SpellingListStat, error) {
	query := `
		SELECT id, list_id, date, elapsed_time, number_correct, number_incorrect
		FROM spelling_list_stats
		WHERE list_id = ?
		ORDER BY date DESC
	`
	rows, err := r.db.Query(query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	return scanStats(rows)
}

// GetUserStats retrieves all test results across a user's lists, most
// recent first
func (r *StatRepository) GetUserStats(userID int64) ([]models.SpellingListStat, error) {
	query := `
		SELECT s.id, s.list_id, s.date, s.elapsed_time, s.number_correct, s.number_incorrect
		FROM spelling_list_stats s
		INNER JOIN spelling_lists sl ON s.list_id = sl.id
		WHERE sl.user_id = ?
		ORDER BY s.date DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user stats: %w", err)
	}
	defer rows.Close()

	return scanStats(rows)
}

func scanStats(rows *sql.Rows) ([]models.SpellingListStat, error) {
	var stats []models.SpellingListStat
	for rows.Next() {
		var stat models.SpellingListStat
		var dateMillis int64
		if err := rows.Scan(
			&stat.ID,
			&stat.ListID,
			&dateMillis,
			&stat.ElapsedTime,
			&stat.NumberCorrect,
			&stat.NumberIncorrect,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stat: %w", err)
		}
		stat.Date = time.UnixMilli(dateMillis)
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stats: %w", err)
	}

	return stats, nil
}
