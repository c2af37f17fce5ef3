package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"spelltest/internal/repository"
	"spelltest/internal/service"
)

// QuizHandler runs spelling test sessions over HTTP
type QuizHandler struct {
	quizService  *service.QuizService
	emailService *service.EmailService
	userRepo     *repository.UserRepository
	listRepo     *repository.ListRepository
	statRepo     *repository.StatRepository
	resultEmail  string
}

// NewQuizHandler creates a new quiz handler. resultEmail may be empty, in
// which case completed tests are not mailed anywhere.
func NewQuizHandler(
	quizService *service.QuizService,
	emailService *service.EmailService,
	userRepo *repository.UserRepository,
	listRepo *repository.ListRepository,
	statRepo *repository.StatRepository,
	resultEmail string,
) *QuizHandler {
	return &QuizHandler{
		quizService:  quizService,
		emailService: emailService,
		userRepo:     userRepo,
		listRepo:     listRepo,
		statRepo:     statRepo,
		resultEmail:  resultEmail,
	}
}

// StartQuiz handles POST /quiz/start/{listId}
func (h *QuizHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", "", err)
		return
	}

	snap, err := h.quizService.StartSession(listID)
	if errors.Is(err, service.ErrListNotFound) {
		respondWithError(w, http.StatusNotFound, "List not found", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to start quiz", "", err)
		return
	}

	if snap.State == "complete" {
		h.mailResult(snap.StatID)
	}

	respondJSON(w, http.StatusCreated, snap)
}

// GetQuiz handles GET /quiz/{id}
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	snap, err := h.quizService.GetSession(r.PathValue("id"))
	if errors.Is(err, service.ErrSessionNotFound) {
		respondWithError(w, http.StatusNotFound, "Session not found", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load session", "", err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// SubmitAnswer handles POST /quiz/{id}/answer
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	result, err := h.quizService.SubmitAnswer(r.PathValue("id"), body.Answer)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondWithError(w, http.StatusNotFound, "Session not found", "", nil)
		return
	case errors.Is(err, service.ErrSessionState):
		respondWithError(w, http.StatusConflict, "Session is not awaiting an answer", "", nil)
		return
	case err != nil:
		respondWithError(w, http.StatusInternalServerError, "Failed to submit answer", "", err)
		return
	}

	if result.Done {
		h.mailResult(result.StatID)
	}

	respondJSON(w, http.StatusOK, result)
}

// RepeatWord handles POST /quiz/{id}/repeat
func (h *QuizHandler) RepeatWord(w http.ResponseWriter, r *http.Request) {
	err := h.quizService.RepeatWord(r.PathValue("id"))
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondWithError(w, http.StatusNotFound, "Session not found", "", nil)
		return
	case errors.Is(err, service.ErrSessionState):
		respondWithError(w, http.StatusConflict, "No word to repeat", "", nil)
		return
	case err != nil:
		respondWithError(w, http.StatusInternalServerError, "Failed to repeat word", "", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// AbandonQuiz handles POST /quiz/{id}/abandon
func (h *QuizHandler) AbandonQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.quizService.AbandonSession(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to abandon session", "", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// mailResult sends the completed test result in the background when a
// recipient is configured
func (h *QuizHandler) mailResult(statID int64) {
	if h.emailService == nil || !h.emailService.IsEnabled() || h.resultEmail == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		stat, err := h.statRepo.GetStat(statID)
		if err != nil || stat == nil {
			log.Printf("Failed to load stat %d for result email: %v", statID, err)
			return
		}
		list, err := h.listRepo.GetSpellingList(stat.ListID)
		if err != nil || list == nil {
			log.Printf("Failed to load list %d for result email: %v", stat.ListID, err)
			return
		}
		user, err := h.userRepo.GetUser(list.UserID)
		if err != nil || user == nil {
			log.Printf("Failed to load user %d for result email: %v", list.UserID, err)
			return
		}

		if err := h.emailService.SendTestResultEmail(ctx, h.resultEmail, user, list, stat); err != nil {
			log.Printf("Failed to send result email: %v", err)
		}
	}()
}
