package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"spelltest/internal/models"
	"spelltest/internal/repository"
)

// Speaker pronounces a word for the test taker. Implementations must not
// block; failures stay on their side of the interface.
type Speaker interface {
	Speak(word string)
}

// SessionState tracks where a quiz session is in its lifecycle
type SessionState int

const (
	// StateLoaded means the word list is loaded but no word has been
	// presented yet
	StateLoaded SessionState = iota

	// StateAwaitingAnswer means a word has been spoken and the session is
	// waiting for the taker's spelling
	StateAwaitingAnswer

	// StateScoring means an answer is being checked
	StateScoring

	// StateComplete means every word has been answered and the result is
	// persisted
	StateComplete
)

func (s SessionState) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateScoring:
		return "scoring"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

var (
	// ErrSessionNotFound is returned when no live session has the given ID
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionState is returned when an operation is attempted in a
	// state that does not allow it
	ErrSessionState = errors.New("operation not allowed in current session state")

	// ErrListNotFound is returned when a session is started against a
	// spelling list that does not exist
	ErrListNotFound = errors.New("spelling list not found")
)

// QuizSession is one run through a spelling list. Words are presented in
// random order and each is asked exactly once.
type QuizSession struct {
	ID     string
	ListID int64

	state     SessionState
	remaining []models.Word
	current   *models.Word
	correct   int
	incorrect int
	startTime time.Time
	statID    int64
}

// SessionSnapshot is the caller-visible view of a session. The current
// word's spelling is deliberately absent; takers hear it, they don't see it.
type SessionSnapshot struct {
	ID              string `json:"id"`
	ListID          int64  `json:"list_id"`
	State           string `json:"state"`
	WordsRemaining  int    `json:"words_remaining"`
	NumberCorrect   int    `json:"number_correct"`
	NumberIncorrect int    `json:"number_incorrect"`
	Definition      string `json:"definition,omitempty"`
	ExampleSentence string `json:"example_sentence,omitempty"`
	StatID          int64  `json:"stat_id,omitempty"`
}

// AnswerResult reports the outcome of one submitted spelling
type AnswerResult struct {
	Correct         bool   `json:"correct"`
	CorrectSpelling string `json:"correct_spelling"`
	Done            bool   `json:"done"`
	StatID          int64  `json:"stat_id,omitempty"`
}

// QuizService runs spelling test sessions. Sessions live in memory; only
// the final result of a completed session reaches the database.
type QuizService struct {
	listRepo *repository.ListRepository
	statRepo *repository.StatRepository
	speaker  Speaker

	mu       sync.Mutex
	sessions map[string]*QuizSession
}

// NewQuizService creates a new quiz service. The speaker may be nil, in
// which case speech requests are dropped.
func NewQuizService(listRepo *repository.ListRepository, statRepo *repository.StatRepository, speaker Speaker) *QuizService {
	return &QuizService{
		listRepo: listRepo,
		statRepo: statRepo,
		speaker:  speaker,
		sessions: make(map[string]*QuizSession),
	}
}

// StartSession loads a spelling list, presents the first word and returns
// the new session. A list with no words completes on the spot, recording a
// zeroed result.
func (s *QuizService) StartSession(listID int64) (*SessionSnapshot, error) {
	list, err := s.listRepo.GetSpellingList(listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("%w: %d", ErrListNotFound, listID)
	}

	words, err := s.listRepo.GetWords(listID)
	if err != nil {
		return nil, err
	}

	session := &QuizSession{
		ID:        uuid.New().String(),
		ListID:    listID,
		state:     StateLoaded,
		remaining: words,
		startTime: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session

	if len(session.remaining) == 0 {
		if err := s.complete(session); err != nil {
			delete(s.sessions, session.ID)
			return nil, err
		}
		return snapshot(session), nil
	}

	s.presentNextWord(session)

	return snapshot(session), nil
}

// SubmitAnswer checks a spelling against the current word. Outside of the
// awaiting-answer state this is an error, never a silent no-op.
func (s *QuizService) SubmitAnswer(sessionID, answer string) (*AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if session.state != StateAwaitingAnswer {
		return nil, fmt.Errorf("%w: cannot answer while %s", ErrSessionState, session.state)
	}

	session.state = StateScoring

	correct := checkSpelling(answer, session.current.Spelling)
	if correct {
		session.correct++
	} else {
		session.incorrect++
	}

	result := &AnswerResult{
		Correct:         correct,
		CorrectSpelling: session.current.Spelling,
	}

	if len(session.remaining) == 0 {
		if err := s.complete(session); err != nil {
			// Roll the answer back so the word stays askable and the
			// session can finish once the store recovers
			if correct {
				session.correct--
			} else {
				session.incorrect--
			}
			session.state = StateAwaitingAnswer
			return nil, err
		}
		result.Done = true
		result.StatID = session.statID
		return result, nil
	}

	s.presentNextWord(session)

	return result, nil
}

// RepeatWord speaks the current word again
func (s *QuizService) RepeatWord(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if session.state != StateAwaitingAnswer {
		return fmt.Errorf("%w: no word to repeat while %s", ErrSessionState, session.state)
	}

	s.speak(session.current.Spelling)

	return nil
}

// AbandonSession discards a session without recording a result. Abandoning
// an already-completed or unknown session is not an error.
func (s *QuizService) AbandonSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)

	return nil
}

// GetSession returns the current view of a live session
func (s *QuizService) GetSession(sessionID string) (*SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	return snapshot(session), nil
}

// presentNextWord draws a random word from the remaining pool and speaks
// it. Callers must hold the mutex and guarantee the pool is non-empty.
func (s *QuizService) presentNextWord(session *QuizSession) {
	index := rand.Intn(len(session.remaining))
	word := session.remaining[index]
	session.remaining = append(session.remaining[:index], session.remaining[index+1:]...)
	session.current = &word
	session.state = StateAwaitingAnswer

	s.speak(word.Spelling)
}

// complete finalizes a session: computes the elapsed time, persists the
// result and keeps the session around in its terminal state
func (s *QuizService) complete(session *QuizSession) error {
	stat := &models.SpellingListStat{
		ListID:          session.ListID,
		Date:            time.Now(),
		ElapsedTime:     time.Since(session.startTime).Milliseconds(),
		NumberCorrect:   session.correct,
		NumberIncorrect: session.incorrect,
	}

	statID, err := s.statRepo.AddStat(stat)
	if err != nil {
		return fmt.Errorf("failed to record test result: %w", err)
	}

	session.current = nil
	session.state = StateComplete
	session.statID = statID

	return nil
}

func (s *QuizService) speak(word string) {
	if s.speaker == nil {
		return
	}
	s.speaker.Speak(word)
}

// checkSpelling compares an answer against the expected word, ignoring
// surrounding whitespace and letter case
func checkSpelling(answer, expected string) bool {
	normalizedAnswer := strings.ToLower(strings.TrimSpace(answer))
	normalizedExpected := strings.ToLower(strings.TrimSpace(expected))
	return normalizedAnswer == normalizedExpected
}

func snapshot(session *QuizSession) *SessionSnapshot {
	snap := &SessionSnapshot{
		ID:              session.ID,
		ListID:          session.ListID,
		State:           session.state.String(),
		WordsRemaining:  len(session.remaining),
		NumberCorrect:   session.correct,
		NumberIncorrect: session.incorrect,
		StatID:          session.statID,
	}
	if session.current != nil {
		snap.Definition = session.current.Definition
		snap.ExampleSentence = session.current.ExampleSentence
	}
	return snap
}
