package service

import (
	"errors"
	"fmt"
	"strings"

	"spelltest/internal/models"
	"spelltest/internal/repository"
)

var (
	// ErrListEmptyName is returned when a spelling list has no name
	ErrListEmptyName = errors.New("spelling list name cannot be empty")

	// ErrWordEmptySpelling is returned when a word has no spelling
	ErrWordEmptySpelling = errors.New("word spelling cannot be empty")

	// ErrUserNotFound is returned when an operation targets a user that
	// does not exist
	ErrUserNotFound = errors.New("user not found")
)

// ListService wraps list and word persistence with validation and keeps
// pronunciation audio warm for quiz sessions
type ListService struct {
	listRepo *repository.ListRepository
	userRepo *repository.UserRepository
	speaker  Speaker
}

// NewListService creates a new list service. The speaker may be nil.
func NewListService(listRepo *repository.ListRepository, userRepo *repository.UserRepository, speaker Speaker) *ListService {
	return &ListService{
		listRepo: listRepo,
		userRepo: userRepo,
		speaker:  speaker,
	}
}

// SaveList validates and stores a spelling list
func (s *ListService) SaveList(list *models.SpellingList) (int64, error) {
	if strings.TrimSpace(list.Name) == "" {
		return 0, ErrListEmptyName
	}

	user, err := s.userRepo.GetUser(list.UserID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, fmt.Errorf("%w: %d", ErrUserNotFound, list.UserID)
	}

	return s.listRepo.PutSpellingList(list)
}

// SaveWord validates and stores a word, then requests its pronunciation so
// the audio cache is ready before any test starts
func (s *ListService) SaveWord(word *models.Word) (int64, error) {
	if strings.TrimSpace(word.Spelling) == "" {
		return 0, ErrWordEmptySpelling
	}

	id, err := s.listRepo.PutWord(word)
	if err != nil {
		return 0, err
	}

	if s.speaker != nil {
		s.speaker.Speak(word.Spelling)
	}

	return id, nil
}

// PrepareAudio requests pronunciation of every word in a list
func (s *ListService) PrepareAudio(listID int64) error {
	if s.speaker == nil {
		return nil
	}

	words, err := s.listRepo.GetWords(listID)
	if err != nil {
		return err
	}

	for _, word := range words {
		s.speaker.Speak(word.Spelling)
	}

	return nil
}
