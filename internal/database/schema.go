package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// SchemaVersion is the version of the table layout this build understands.
// A database created by a different version is rejected, never migrated.
const SchemaVersion = 1

// ErrSchemaVersion is returned when the database on disk was created by a
// different schema version
var ErrSchemaVersion = errors.New("database schema version mismatch")

// Seed data inserted when the schema is first created
const (
	SeedUserFirstName = "Default"
	SeedUserLastName  = "User"
	SeedListName      = "Default Spelling List"
)

var seedDifficulties = []string{"Easy", "Medium", "Hard"}

var seedWords = []string{"apple", "banana", "cat", "dog"}

// EnsureSchema brings a fresh database to the current schema version, or
// verifies that an existing one matches it. Creation and seeding run in one
// transaction; engines that commit DDL implicitly (MySQL) weaken that to
// "a rerun converges", which the IF NOT EXISTS creation guarantees.
func (db *DB) EnsureSchema() error {
	if _, err := db.Exec(db.Dialect.CreateVersionTableQuery()); err != nil {
		return fmt.Errorf("failed to create schema version table: %w", err)
	}

	var version int64
	err := db.QueryRow("SELECT version FROM schema_version").Scan(&version)
	switch {
	case err == nil:
		if version != SchemaVersion {
			return fmt.Errorf("%w: database has version %d, expected %d", ErrSchemaVersion, version, SchemaVersion)
		}
		return nil
	case errors.Is(err, sql.ErrNoRows):
		// Fresh database, fall through to create and seed
	default:
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback()

	for _, query := range db.Dialect.CreateSchemaQueries() {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if err := seed(tx); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}

	return nil
}

// seed inserts the starter rows a new database ships with: the three
// difficulty levels, a default user and one example spelling list
func seed(tx *Tx) error {
	for _, description := range seedDifficulties {
		if _, err := tx.Exec("INSERT INTO difficulties (description) VALUES (?)", description); err != nil {
			return fmt.Errorf("failed to insert difficulty %s: %w", description, err)
		}
	}

	userID, err := tx.ExecReturningID(
		"INSERT INTO users (first_name, last_name) VALUES (?, ?)",
		SeedUserFirstName, SeedUserLastName,
	)
	if err != nil {
		return fmt.Errorf("failed to insert default user: %w", err)
	}

	listID, err := tx.ExecReturningID(
		"INSERT INTO spelling_lists (user_id, name, type, difficulty_id) VALUES (?, ?, ?, ?)",
		userID, SeedListName, "", nil,
	)
	if err != nil {
		return fmt.Errorf("failed to insert default spelling list: %w", err)
	}

	for _, spelling := range seedWords {
		_, err := tx.Exec(
			"INSERT INTO words (list_id, spelling, definition, example_sentence, difficulty_id, type) VALUES (?, ?, ?, ?, ?, ?)",
			listID, spelling, "", "", nil, "",
		)
		if err != nil {
			return fmt.Errorf("failed to insert word %s: %w", spelling, err)
		}
	}

	return nil
}
