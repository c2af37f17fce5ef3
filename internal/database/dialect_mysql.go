package database

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	// clientFoundRows makes RowsAffected report matched rows rather than
	// changed rows, which the update-then-insert upsert fallback relies on:
	// a no-op update of an existing row must not look like a missing row.
	if strings.Contains(config.URL, "?") {
		return config.URL + "&clientFoundRows=true"
	}
	return config.URL + "?clientFoundRows=true"
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	// MySQL uses ? placeholders like SQLite, no rewrite needed
	return query
}

func (d *MySQLDialect) SupportsLastInsertId() bool {
	return true
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool for MySQL. Foreign key checks default to
	// ON server-side; a session-scoped SET here would only cover one
	// pooled connection anyway.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	return nil
}

func (d *MySQLDialect) CreateVersionTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS schema_version (
			version BIGINT NOT NULL
		);
	`
}

func (d *MySQLDialect) SyncIDSequenceQuery(table string) string {
	// AUTO_INCREMENT advances past explicit IDs on its own
	return ""
}

func (d *MySQLDialect) CreateSchemaQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS difficulties (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			description VARCHAR(64) UNIQUE NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS spelling_lists (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(64) NOT NULL DEFAULT '',
			difficulty_id BIGINT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY (difficulty_id) REFERENCES difficulties(id)
		);`,
		`CREATE TABLE IF NOT EXISTS words (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			list_id BIGINT NOT NULL,
			spelling VARCHAR(255) NOT NULL,
			definition TEXT,
			example_sentence TEXT,
			difficulty_id BIGINT NULL,
			type VARCHAR(64) NOT NULL DEFAULT '',
			FOREIGN KEY (list_id) REFERENCES spelling_lists(id) ON DELETE CASCADE,
			FOREIGN KEY (difficulty_id) REFERENCES difficulties(id)
		);`,
		`CREATE TABLE IF NOT EXISTS spelling_list_stats (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			list_id BIGINT NOT NULL,
			date BIGINT NOT NULL,
			elapsed_time BIGINT NOT NULL,
			number_correct INT NOT NULL,
			number_incorrect INT NOT NULL,
			FOREIGN KEY (list_id) REFERENCES spelling_lists(id) ON DELETE CASCADE
		);`,
	}
}
