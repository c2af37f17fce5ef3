package repository

import (
	"path/filepath"
	"testing"

	"spelltest/internal/database"
	"spelltest/internal/models"
)

// newTestDB opens a throwaway SQLite database with the schema created and
// seed data in place
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}

	return db
}

// createUser inserts a user and returns its ID
func createUser(t *testing.T, db *database.DB, firstName, lastName string) int64 {
	t.Helper()

	repo := NewUserRepository(db)
	id, err := repo.PutUser(&models.User{ID: models.NullRowID, FirstName: firstName, LastName: lastName})
	if err != nil {
		t.Fatalf("PutUser() failed: %v", err)
	}
	return id
}

// createList inserts a spelling list for a user and returns its ID
func createList(t *testing.T, db *database.DB, userID int64, name string) int64 {
	t.Helper()

	repo := NewListRepository(db)
	id, err := repo.PutSpellingList(&models.SpellingList{ID: models.NullRowID, UserID: userID, Name: name})
	if err != nil {
		t.Fatalf("PutSpellingList() failed: %v", err)
	}
	return id
}

// createWord inserts a word into a list and returns its ID
func createWord(t *testing.T, db *database.DB, listID int64, spelling string) int64 {
	t.Helper()

	repo := NewListRepository(db)
	id, err := repo.PutWord(&models.Word{ID: models.NullRowID, ListID: listID, Spelling: spelling})
	if err != nil {
		t.Fatalf("PutWord() failed: %v", err)
	}
	return id
}
