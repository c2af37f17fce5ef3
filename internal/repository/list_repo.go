package repository

import (
	"database/sql"
	"fmt"

	"spelltest/internal/database"
	"spelltest/internal/models"
)

// ListRepository handles database operations for spelling lists and words
type ListRepository struct {
	db *database.DB
}

// NewListRepository creates a new list repository
func NewListRepository(db *database.DB) *ListRepository {
	return &ListRepository{db: db}
}

// GetSpellingLists retrieves all spelling lists belonging to a user
func (r *ListRepository) GetSpellingLists(userID int64) ([]models.SpellingList, error) {
	query := `
		SELECT id, user_id, name, type, difficulty_id
		FROM spelling_lists
		WHERE user_id = ?
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	return scanLists(rows)
}

// GetAllSpellingLists retrieves every spelling list
func (r *ListRepository) GetAllSpellingLists() ([]models.SpellingList, error) {
	query := `
		SELECT id, user_id, name, type, difficulty_id
		FROM spelling_lists
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	return scanLists(rows)
}

func scanLists(rows *sql.Rows) ([]models.SpellingList, error) {
	var lists []models.SpellingList
	for rows.Next() {
		var list models.SpellingList
		var difficultyID sql.NullInt64
		if err := rows.Scan(&list.ID, &list.UserID, &list.Name, &list.Type, &difficultyID); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		if difficultyID.Valid {
			list.DifficultyID = &difficultyID.Int64
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}

	return lists, nil
}

// GetSpellingList retrieves a spelling list by ID, returning nil when no
// such row exists
func (r *ListRepository) GetSpellingList(listID int64) (*models.SpellingList, error) {
	query := `
		SELECT id, user_id, name, type, difficulty_id
		FROM spelling_lists
		WHERE id = ?
	`
	list := &models.SpellingList{}
	var difficultyID sql.NullInt64
	err := r.db.QueryRow(query, listID).Scan(
		&list.ID,
		&list.UserID,
		&list.Name,
		&list.Type,
		&difficultyID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	if difficultyID.Valid {
		list.DifficultyID = &difficultyID.Int64
	}

	return list, nil
}

// PutSpellingList inserts the list when its ID is models.NullRowID,
// otherwise replaces the stored row. Returns the persisted ID either way.
func (r *ListRepository) PutSpellingList(list *models.SpellingList) (int64, error) {
	if list.ID == models.NullRowID {
		id, err := r.db.ExecReturningID(
			"INSERT INTO spelling_lists (user_id, name, type, difficulty_id) VALUES (?, ?, ?, ?)",
			list.UserID, list.Name, list.Type, nullableID(list.DifficultyID),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert list: %w", err)
		}
		list.ID = id
		return id, nil
	}

	result, err := r.db.Exec(
		"UPDATE spelling_lists SET user_id = ?, name = ?, type = ?, difficulty_id = ? WHERE id = ?",
		list.UserID, list.Name, list.Type, nullableID(list.DifficultyID), list.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update list: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		_, err := r.db.Exec(
			"INSERT INTO spelling_lists (id, user_id, name, type, difficulty_id) VALUES (?, ?, ?, ?, ?)",
			list.ID, list.UserID, list.Name, list.Type, nullableID(list.DifficultyID),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert list: %w", err)
		}
		if err := syncIDSequence(r.db, "spelling_lists"); err != nil {
			return 0, err
		}
	}

	return list.ID, nil
}

// DeleteSpellingList removes a list and, through cascading deletes, its
// words and stats. Deleting an absent list is not an error.
func (r *ListRepository) DeleteSpellingList(listID int64) error {
	query := "DELETE FROM spelling_lists WHERE id = ?"
	_, err := r.db.Exec(query, listID)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return nil
}

// GetWords retrieves all words in a spelling list
func (r *ListRepository) GetWords(listID int64) ([]models.Word, error) {
	query := `
		SELECT id, list_id, spelling, definition, example_sentence, difficulty_id, type
		FROM words
		WHERE list_id = ?
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var word models.Word
		var difficultyID sql.NullInt64
		if err := rows.Scan(
			&word.ID,
			&word.ListID,
			&word.Spelling,
			&word.Definition,
			&word.ExampleSentence,
			&difficultyID,
			&word.Type,
		); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		if difficultyID.Valid {
			word.DifficultyID = &difficultyID.Int64
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate words: %w", err)
	}

	return words, nil
}

// GetWord retrieves a word by ID, returning nil when no such row exists
func (r *ListRepository) GetWord(wordID int64) (*models.Word, error) {
	query := `
		SELECT id, list_id, spelling, definition, example_sentence, difficulty_id, type
		FROM words
		WHERE id = ?
	`
	word := &models.Word{}
	var difficultyID sql.NullInt64
	err := r.db.QueryRow(query, wordID).Scan(
		&word.ID,
		&word.ListID,
		&word.Spelling,
		&word.Definition,
		&word.ExampleSentence,
		&difficultyID,
		&word.Type,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}

	if difficultyID.Valid {
		word.DifficultyID = &difficultyID.Int64
	}

	return word, nil
}

// PutWord inserts the word when its ID is models.NullRowID, otherwise
// replaces the stored row. Returns the persisted ID either way.
func (r *ListRepository) PutWord(word *models.Word) (int64, error) {
	if word.ID == models.NullRowID {
		id, err := r.db.ExecReturningID(
			"INSERT INTO words (list_id, spelling, definition, example_sentence, difficulty_id, type) VALUES (?, ?, ?, ?, ?, ?)",
			word.ListID, word.Spelling, word.Definition, word.ExampleSentence, nullableID(word.DifficultyID), word.Type,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert word: %w", err)
		}
		word.ID = id
		return id, nil
	}

	result, err := r.db.Exec(
		"UPDATE words SET list_id = ?, spelling = ?, definition = ?, example_sentence = ?, difficulty_id = ?, type = ? WHERE id = ?",
		word.ListID, word.Spelling, word.Definition, word.ExampleSentence, nullableID(word.DifficultyID), word.Type, word.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update word: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		_, err := r.db.Exec(
			"INSERT INTO words (id, list_id, spelling, definition, example_sentence, difficulty_id, type) VALUES (?, ?, ?, ?, ?, ?, ?)",
			word.ID, word.ListID, word.Spelling, word.Definition, word.ExampleSentence, nullableID(word.DifficultyID), word.Type,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert word: %w", err)
		}
		if err := syncIDSequence(r.db, "words"); err != nil {
			return 0, err
		}
	}

	return word.ID, nil
}

// DeleteWord removes a word from its list. Deleting an absent word is not
// an error.
func (r *ListRepository) DeleteWord(wordID int64) error {
	query := "DELETE FROM words WHERE id = ?"
	_, err := r.db.Exec(query, wordID)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}

// GetWordCount returns the number of words in a list
func (r *ListRepository) GetWordCount(listID int64) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM words WHERE list_id = ?"
	err := r.db.QueryRow(query, listID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// nullableID converts an optional foreign key into a driver-friendly value
func nullableID(id *int64) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

// syncIDSequence realigns a table's ID generator after an insert carrying
// an explicit ID, on engines whose sequences do not follow such inserts
func syncIDSequence(db *database.DB, table string) error {
	query := db.Dialect.SyncIDSequenceQuery(table)
	if query == "" {
		return nil
	}
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to sync %s id sequence: %w", table, err)
	}
	return nil
}
