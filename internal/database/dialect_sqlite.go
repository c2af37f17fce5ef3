package database

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect implements Dialect for SQLite
type SQLiteDialect struct{}

// NewSQLiteDialect creates a new SQLite dialect
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DSN(config DialectConfig) string {
	// Foreign keys and WAL are per-connection settings in SQLite. Carrying
	// them in the DSN makes the driver apply them to every connection the
	// pool opens, not just the one a startup Exec happens to land on.
	return "file:" + config.Path + "?_foreign_keys=on&_journal_mode=WAL"
}

func (d *SQLiteDialect) RewriteQuery(query string) string {
	// SQLite uses ? placeholders, no rewrite needed
	return query
}

func (d *SQLiteDialect) SupportsLastInsertId() bool {
	return true
}

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool. Foreign keys and WAL come from the DSN
	// so they hold on every pooled connection.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	return nil
}

func (d *SQLiteDialect) CreateVersionTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		);
	`
}

func (d *SQLiteDialect) SyncIDSequenceQuery(table string) string {
	// AUTOINCREMENT bumps sqlite_sequence past explicit IDs on its own
	return ""
}

func (d *SQLiteDialect) CreateSchemaQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS difficulties (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT UNIQUE NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS spelling_lists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			difficulty_id INTEGER REFERENCES difficulties(id)
		);`,
		`CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			list_id INTEGER NOT NULL REFERENCES spelling_lists(id) ON DELETE CASCADE,
			spelling TEXT NOT NULL,
			definition TEXT NOT NULL DEFAULT '',
			example_sentence TEXT NOT NULL DEFAULT '',
			difficulty_id INTEGER REFERENCES difficulties(id),
			type TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS spelling_list_stats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			list_id INTEGER NOT NULL REFERENCES spelling_lists(id) ON DELETE CASCADE,
			date INTEGER NOT NULL,
			elapsed_time INTEGER NOT NULL,
			number_correct INTEGER NOT NULL,
			number_incorrect INTEGER NOT NULL
		);`,
	}
}
