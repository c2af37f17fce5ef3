package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestEnsureSchemaFreshDatabase(t *testing.T) {
	db := newTestDB(t)

	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}

	var version int64
	if err := db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("reading schema version: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("schema version = %d, want %d", version, SchemaVersion)
	}
}

func TestEnsureSchemaSeedsData(t *testing.T) {
	db := newTestDB(t)

	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}

	var difficulties int
	if err := db.QueryRow("SELECT COUNT(*) FROM difficulties").Scan(&difficulties); err != nil {
		t.Fatalf("counting difficulties: %v", err)
	}
	if difficulties != 3 {
		t.Errorf("difficulty count = %d, want 3", difficulties)
	}

	var firstName, lastName string
	if err := db.QueryRow("SELECT first_name, last_name FROM users").Scan(&firstName, &lastName); err != nil {
		t.Fatalf("reading seeded user: %v", err)
	}
	if firstName != SeedUserFirstName || lastName != SeedUserLastName {
		t.Errorf("seeded user = %q %q, want %q %q", firstName, lastName, SeedUserFirstName, SeedUserLastName)
	}

	var listName string
	if err := db.QueryRow("SELECT name FROM spelling_lists").Scan(&listName); err != nil {
		t.Fatalf("reading seeded list: %v", err)
	}
	if listName != SeedListName {
		t.Errorf("seeded list = %q, want %q", listName, SeedListName)
	}

	var words int
	if err := db.QueryRow("SELECT COUNT(*) FROM words").Scan(&words); err != nil {
		t.Fatalf("counting words: %v", err)
	}
	if words != 4 {
		t.Errorf("word count = %d, want 4", words)
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("first EnsureSchema() failed: %v", err)
	}
	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("second EnsureSchema() failed: %v", err)
	}

	var users int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&users); err != nil {
		t.Fatalf("counting users: %v", err)
	}
	if users != 1 {
		t.Errorf("user count after repeated EnsureSchema = %d, want 1", users)
	}
}

func TestEnsureSchemaVersionMismatch(t *testing.T) {
	db := newTestDB(t)

	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}

	if _, err := db.Exec("UPDATE schema_version SET version = ?", SchemaVersion+1); err != nil {
		t.Fatalf("bumping schema version: %v", err)
	}

	err := db.EnsureSchema()
	if !errors.Is(err, ErrSchemaVersion) {
		t.Errorf("EnsureSchema() on mismatched version = %v, want ErrSchemaVersion", err)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := newTestDB(t)

	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}

	_, err := db.Exec(
		"INSERT INTO words (list_id, spelling, definition, example_sentence, type) VALUES (?, ?, ?, ?, ?)",
		int64(9999), "orphan", "", "", "",
	)
	if err == nil {
		t.Error("insert with dangling list_id succeeded, want foreign key violation")
	}
}

func TestForeignKeysEnforcedAcrossPool(t *testing.T) {
	db := newTestDB(t)

	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}

	// Pin several connections with open result sets so the insert below is
	// forced onto a connection the pool opens fresh
	var pinned []*sql.Rows
	defer func() {
		for _, rows := range pinned {
			rows.Close()
		}
	}()
	for i := 0; i < 6; i++ {
		rows, err := db.Query("SELECT id FROM users")
		if err != nil {
			t.Fatalf("pinning connection %d: %v", i, err)
		}
		if !rows.Next() {
			t.Fatal("expected the seeded user row")
		}
		pinned = append(pinned, rows)
	}

	_, err := db.Exec(
		"INSERT INTO words (list_id, spelling, definition, example_sentence, type) VALUES (?, ?, ?, ?, ?)",
		int64(9999), "orphan", "", "", "",
	)
	if err == nil {
		t.Error("insert with dangling list_id succeeded on a fresh pooled connection, want foreign key violation")
	}
}
