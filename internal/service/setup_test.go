package service

import (
	"path/filepath"
	"testing"

	"spelltest/internal/database"
	"spelltest/internal/models"
	"spelltest/internal/repository"
)

// fakeSpeaker records every word it is asked to pronounce
type fakeSpeaker struct {
	spoken []string
}

func (f *fakeSpeaker) Speak(word string) {
	f.spoken = append(f.spoken, word)
}

func (f *fakeSpeaker) last(t *testing.T) string {
	t.Helper()
	if len(f.spoken) == 0 {
		t.Fatal("no word has been spoken")
	}
	return f.spoken[len(f.spoken)-1]
}

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

// newTestList creates a user and a list holding the given words, returning
// the list ID
func newTestList(t *testing.T, db *database.DB, listName string, spellings ...string) int64 {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	listRepo := repository.NewListRepository(db)

	userID, err := userRepo.PutUser(&models.User{ID: models.NullRowID, FirstName: "Alice", LastName: "Tester"})
	if err != nil {
		t.Fatalf("PutUser() failed: %v", err)
	}

	listID, err := listRepo.PutSpellingList(&models.SpellingList{ID: models.NullRowID, UserID: userID, Name: listName})
	if err != nil {
		t.Fatalf("PutSpellingList() failed: %v", err)
	}

	for _, spelling := range spellings {
		_, err := listRepo.PutWord(&models.Word{ID: models.NullRowID, ListID: listID, Spelling: spelling})
		if err != nil {
			t.Fatalf("PutWord() failed: %v", err)
		}
	}

	return listID
}
