package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresDialect implements Dialect for PostgreSQL
type PostgresDialect struct{}

// NewPostgresDialect creates a new PostgreSQL dialect
func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

func (d *PostgresDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *PostgresDialect) RewriteQuery(query string) string {
	// PostgreSQL uses $1, $2, etc. instead of ?
	return rewritePlaceholdersToNumbered(query)
}

func (d *PostgresDialect) SupportsLastInsertId() bool {
	// PostgreSQL doesn't support LastInsertId(), needs RETURNING clause
	return false
}

func (d *PostgresDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool for PostgreSQL
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	// PostgreSQL has foreign keys enabled by default, no pragma needed
	return nil
}

func (d *PostgresDialect) CreateVersionTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS schema_version (
			version BIGINT NOT NULL
		);
	`
}

func (d *PostgresDialect) SyncIDSequenceQuery(table string) string {
	// BIGSERIAL sequences do not move on explicit-ID inserts; without this
	// the next generated ID collides with an imported row
	return fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))",
		table, table,
	)
}

func (d *PostgresDialect) CreateSchemaQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS difficulties (
			id BIGSERIAL PRIMARY KEY,
			description TEXT UNIQUE NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS spelling_lists (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			difficulty_id BIGINT REFERENCES difficulties(id)
		);`,
		`CREATE TABLE IF NOT EXISTS words (
			id BIGSERIAL PRIMARY KEY,
			list_id BIGINT NOT NULL REFERENCES spelling_lists(id) ON DELETE CASCADE,
			spelling TEXT NOT NULL,
			definition TEXT NOT NULL DEFAULT '',
			example_sentence TEXT NOT NULL DEFAULT '',
			difficulty_id BIGINT REFERENCES difficulties(id),
			type TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS spelling_list_stats (
			id BIGSERIAL PRIMARY KEY,
			list_id BIGINT NOT NULL REFERENCES spelling_lists(id) ON DELETE CASCADE,
			date BIGINT NOT NULL,
			elapsed_time BIGINT NOT NULL,
			number_correct INT NOT NULL,
			number_incorrect INT NOT NULL
		);`,
	}
}
