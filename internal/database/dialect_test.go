package database

import (
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		result := dialect.SupportsLastInsertId()
		if !result {
			t.Error("SupportsLastInsertId() should return true for SQLite")
		}
	})

	t.Run("DSN", func(t *testing.T) {
		result := dialect.DSN(DialectConfig{Path: "/tmp/app.db"})
		expected := "file:/tmp/app.db?_foreign_keys=on&_journal_mode=WAL"
		if result != expected {
			t.Errorf("DSN() = %v, want %v", result, expected)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		result := dialect.SupportsLastInsertId()
		if result {
			t.Error("SupportsLastInsertId() should return false for PostgreSQL")
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		result := dialect.SupportsLastInsertId()
		if !result {
			t.Error("SupportsLastInsertId() should return true for MySQL")
		}
	})

	t.Run("DSN appends clientFoundRows", func(t *testing.T) {
		result := dialect.DSN(DialectConfig{URL: "user:pass@tcp(localhost:3306)/spelltest"})
		expected := "user:pass@tcp(localhost:3306)/spelltest?clientFoundRows=true"
		if result != expected {
			t.Errorf("DSN() = %v, want %v", result, expected)
		}
	})

	t.Run("DSN appends clientFoundRows to existing params", func(t *testing.T) {
		result := dialect.DSN(DialectConfig{URL: "user:pass@tcp(localhost:3306)/spelltest?parseTime=true"})
		expected := "user:pass@tcp(localhost:3306)/spelltest?parseTime=true&clientFoundRows=true"
		if result != expected {
			t.Errorf("DSN() = %v, want %v", result, expected)
		}
	})
}

func TestSyncIDSequenceQuery(t *testing.T) {
	t.Run("SQLite needs none", func(t *testing.T) {
		if got := NewSQLiteDialect().SyncIDSequenceQuery("users"); got != "" {
			t.Errorf("SyncIDSequenceQuery() = %q, want empty", got)
		}
	})

	t.Run("MySQL needs none", func(t *testing.T) {
		if got := NewMySQLDialect().SyncIDSequenceQuery("users"); got != "" {
			t.Errorf("SyncIDSequenceQuery() = %q, want empty", got)
		}
	})

	t.Run("PostgreSQL realigns the serial sequence", func(t *testing.T) {
		got := NewPostgresDialect().SyncIDSequenceQuery("words")
		expected := "SELECT setval(pg_get_serial_sequence('words', 'id'), COALESCE((SELECT MAX(id) FROM words), 1))"
		if got != expected {
			t.Errorf("SyncIDSequenceQuery() = %q, want %q", got, expected)
		}
	})
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM words WHERE id = ?",
			expected: "SELECT * FROM words WHERE id = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM words WHERE id = ?",
			expected: "SELECT * FROM words WHERE id = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO users (first_name, last_name) VALUES (?, ?)",
			expected: "INSERT INTO users (first_name, last_name) VALUES ($1, $2)",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE words SET spelling = ?, definition = ? WHERE id = ?",
			expected: "UPDATE words SET spelling = ?, definition = ? WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}
