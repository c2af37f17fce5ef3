package service

import (
	"bytes"
	"path/filepath"
	"testing"

	"spelltest/internal/database"
	"spelltest/internal/repository"
)

func TestBackupExportImportRoundTrip(t *testing.T) {
	source := newTestDB(t)
	newTestList(t, source, "Animals", "cat", "dog")

	var buf bytes.Buffer
	if err := NewBackupService(source).Export(&buf); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	// Import into a schema-only database (no seed rows to collide with)
	target, err := database.Initialize(filepath.Join(t.TempDir(), "restore.db"))
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	t.Cleanup(func() { target.Close() })
	if err := target.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}
	if _, err := target.Exec("DELETE FROM users"); err != nil {
		t.Fatalf("clearing seed users: %v", err)
	}

	if err := NewBackupService(target).Import(&buf); err != nil {
		t.Fatalf("Import() failed: %v", err)
	}

	listRepo := repository.NewListRepository(target)
	lists, err := listRepo.GetAllSpellingLists()
	if err != nil {
		t.Fatalf("GetAllSpellingLists() failed: %v", err)
	}

	found := false
	for _, list := range lists {
		if list.Name == "Animals" {
			found = true
			words, err := listRepo.GetWords(list.ID)
			if err != nil {
				t.Fatalf("GetWords() failed: %v", err)
			}
			if len(words) != 2 {
				t.Errorf("restored word count = %d, want 2", len(words))
			}
		}
	}
	if !found {
		t.Error("restored database missing the Animals list")
	}
}

func TestImportRejectsVersionMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewBackupService(db)

	err := svc.Import(bytes.NewBufferString(`{"version": 99}`))
	if err == nil {
		t.Fatal("Import() accepted a mismatched backup version")
	}
}
