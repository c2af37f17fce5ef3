package repository

import (
	"database/sql"
	"fmt"

	"spelltest/internal/database"
	"spelltest/internal/models"
)

// DifficultyRepository reads the seeded difficulty lookup table
type DifficultyRepository struct {
	db *database.DB
}

// NewDifficultyRepository creates a new difficulty repository
func NewDifficultyRepository(db *database.DB) *DifficultyRepository {
	return &DifficultyRepository{db: db}
}

// GetAllDifficulties retrieves every difficulty level
func (r *DifficultyRepository) GetAllDifficulties() ([]models.Difficulty, error) {
	query := `
		SELECT id, description
		FROM difficulties
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query difficulties: %w", err)
	}
	defer rows.Close()

	var difficulties []models.Difficulty
	for rows.Next() {
		var difficulty models.Difficulty
		if err := rows.Scan(&difficulty.ID, &difficulty.Description); err != nil {
			return nil, fmt.Errorf("failed to scan difficulty: %w", err)
		}
		difficulties = append(difficulties, difficulty)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate difficulties: %w", err)
	}

	return difficulties, nil
}

// GetDifficultyByDescription looks up a difficulty level by its label,
// returning nil when no such row exists
func (r *DifficultyRepository) GetDifficultyByDescription(description string) (*models.Difficulty, error) {
	query := `
		SELECT id, description
		FROM difficulties
		WHERE description = ?
	`
	difficulty := &models.Difficulty{}
	err := r.db.QueryRow(query, description).Scan(&difficulty.ID, &difficulty.Description)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get difficulty: %w", err)
	}

	return difficulty, nil
}
