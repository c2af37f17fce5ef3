package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"spelltest/internal/database"
	"spelltest/internal/models"
	"spelltest/internal/repository"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version    int                       `json:"version"`
	ExportedAt time.Time                 `json:"exported_at"`
	Users      []models.User             `json:"users"`
	Lists      []models.SpellingList     `json:"lists"`
	Words      []models.Word             `json:"words"`
	Stats      []models.SpellingListStat `json:"stats"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db       *database.DB
	userRepo *repository.UserRepository
	listRepo *repository.ListRepository
	statRepo *repository.StatRepository
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{
		db:       db,
		userRepo: repository.NewUserRepository(db),
		listRepo: repository.NewListRepository(db),
		statRepo: repository.NewStatRepository(db),
	}
}

// Export writes a JSON snapshot of every entity to w
func (s *BackupService) Export(w io.Writer) error {
	backup := BackupData{
		Version:    database.SchemaVersion,
		ExportedAt: time.Now(),
	}

	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	backup.Users = users

	lists, err := s.listRepo.GetAllSpellingLists()
	if err != nil {
		return fmt.Errorf("failed to export lists: %w", err)
	}
	backup.Lists = lists

	for _, list := range lists {
		words, err := s.listRepo.GetWords(list.ID)
		if err != nil {
			return fmt.Errorf("failed to export words for list %d: %w", list.ID, err)
		}
		backup.Words = append(backup.Words, words...)

		stats, err := s.statRepo.GetListStats(list.ID)
		if err != nil {
			return fmt.Errorf("failed to export stats for list %d: %w", list.ID, err)
		}
		backup.Stats = append(backup.Stats, stats...)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Exported %d users, %d lists, %d words, %d stats",
		len(backup.Users), len(backup.Lists), len(backup.Words), len(backup.Stats))

	return nil
}

// ExportToFile writes a backup snapshot to the named file
func (s *BackupService) ExportToFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	return s.Export(file)
}

// Import restores a JSON snapshot into the database. Rows keep the IDs
// they were exported with; importing into a non-empty database where those
// IDs collide is the caller's problem.
func (s *BackupService) Import(r io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	if backup.Version != database.SchemaVersion {
		return fmt.Errorf("%w: backup has version %d, expected %d",
			database.ErrSchemaVersion, backup.Version, database.SchemaVersion)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	for _, user := range backup.Users {
		_, err := tx.Exec(
			"INSERT INTO users (id, first_name, last_name) VALUES (?, ?, ?)",
			user.ID, user.FirstName, user.LastName,
		)
		if err != nil {
			return fmt.Errorf("failed to import user %d: %w", user.ID, err)
		}
	}

	for _, list := range backup.Lists {
		var difficultyID interface{}
		if list.DifficultyID != nil {
			difficultyID = *list.DifficultyID
		}
		_, err := tx.Exec(
			"INSERT INTO spelling_lists (id, user_id, name, type, difficulty_id) VALUES (?, ?, ?, ?, ?)",
			list.ID, list.UserID, list.Name, list.Type, difficultyID,
		)
		if err != nil {
			return fmt.Errorf("failed to import list %d: %w", list.ID, err)
		}
	}

	for _, word := range backup.Words {
		var difficultyID interface{}
		if word.DifficultyID != nil {
			difficultyID = *word.DifficultyID
		}
		_, err := tx.Exec(
			"INSERT INTO words (id, list_id, spelling, definition, example_sentence, difficulty_id, type) VALUES (?, ?, ?, ?, ?, ?, ?)",
			word.ID, word.ListID, word.Spelling, word.Definition, word.ExampleSentence, difficultyID, word.Type,
		)
		if err != nil {
			return fmt.Errorf("failed to import word %d: %w", word.ID, err)
		}
	}

	for _, stat := range backup.Stats {
		_, err := tx.Exec(
			"INSERT INTO spelling_list_stats (id, list_id, date, elapsed_time, number_correct, number_incorrect) VALUES (?, ?, ?, ?, ?, ?)",
			stat.ID, stat.ListID, stat.Date.UnixMilli(), stat.ElapsedTime, stat.NumberCorrect, stat.NumberIncorrect,
		)
		if err != nil {
			return fmt.Errorf("failed to import stat %d: %w", stat.ID, err)
		}
	}

	// Imported rows keep their exported IDs; realign any ID generators
	// that do not follow explicit-ID inserts before handing the tables
	// back to normal inserts
	for _, table := range []string{"users", "spelling_lists", "words", "spelling_list_stats"} {
		query := tx.GetDialect().SyncIDSequenceQuery(table)
		if query == "" {
			continue
		}
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to sync %s id sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	log.Printf("Imported %d users, %d lists, %d words, %d stats",
		len(backup.Users), len(backup.Lists), len(backup.Words), len(backup.Stats))

	return nil
}

// ImportFromFile restores a backup snapshot from the named file
func (s *BackupService) ImportFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	return s.Import(file)
}
