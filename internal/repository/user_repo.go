package repository

import (
	"database/sql"
	"fmt"

	"spelltest/internal/database"
	"spelltest/internal/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetAllUsers retrieves every user
func (r *UserRepository) GetAllUsers() ([]models.User, error) {
	query := `
		SELECT id, first_name, last_name
		FROM users
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// GetUser retrieves a user by ID, returning nil when no such row exists
func (r *UserRepository) GetUser(userID int64) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name
		FROM users
		WHERE id = ?
	`
	user := &models.User{}
	err := r.db.QueryRow(query, userID).Scan(&user.ID, &user.FirstName, &user.LastName)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// PutUser inserts the user when its ID is models.NullRowID, otherwise
// replaces the stored row. Returns the persisted ID either way.
func (r *UserRepository) PutUser(user *models.User) (int64, error) {
	if user.ID == models.NullRowID {
		id, err := r.db.ExecReturningID(
			"INSERT INTO users (first_name, last_name) VALUES (?, ?)",
			user.FirstName, user.LastName,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert user: %w", err)
		}
		user.ID = id
		return id, nil
	}

	result, err := r.db.Exec(
		"UPDATE users SET first_name = ?, last_name = ? WHERE id = ?",
		user.FirstName, user.LastName, user.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		// No row with that ID yet, store it under the caller's ID
		_, err := r.db.Exec(
			"INSERT INTO users (id, first_name, last_name) VALUES (?, ?, ?)",
			user.ID, user.FirstName, user.LastName,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert user: %w", err)
		}
		if err := syncIDSequence(r.db, "users"); err != nil {
			return 0, err
		}
	}

	return user.ID, nil
}

// DeleteUser removes a user and, through cascading deletes, their lists,
// words and stats. Deleting an absent user is not an error.
func (r *UserRepository) DeleteUser(userID int64) error {
	query := "DELETE FROM users WHERE id = ?"
	_, err := r.db.Exec(query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
