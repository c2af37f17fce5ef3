package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"spelltest/internal/models"
	"spelltest/internal/repository"
	"spelltest/internal/service"
)

// ListHandler exposes spelling list and word CRUD over HTTP
type ListHandler struct {
	listService    *service.ListService
	listRepo       *repository.ListRepository
	difficultyRepo *repository.DifficultyRepository
}

// NewListHandler creates a new list handler
func NewListHandler(listService *service.ListService, listRepo *repository.ListRepository, difficultyRepo *repository.DifficultyRepository) *ListHandler {
	return &ListHandler{
		listService:    listService,
		listRepo:       listRepo,
		difficultyRepo: difficultyRepo,
	}
}

// ListLists handles GET /lists
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.listRepo.GetAllSpellingLists()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load lists", "", err)
		return
	}
	if lists == nil {
		lists = []models.SpellingList{}
	}
	respondJSON(w, http.StatusOK, lists)
}

// GetList handles GET /lists/{id}
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", "", err)
		return
	}

	list, err := h.listRepo.GetSpellingList(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load list", "", err)
		return
	}
	if list == nil {
		respondWithError(w, http.StatusNotFound, "List not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// PutList handles PUT /lists. A body with id -1 creates a new list.
func (h *ListHandler) PutList(w http.ResponseWriter, r *http.Request) {
	var list models.SpellingList
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	created := list.ID == models.NullRowID

	_, err := h.listService.SaveList(&list)
	switch {
	case errors.Is(err, service.ErrListEmptyName):
		respondWithError(w, http.StatusBadRequest, "List name cannot be empty", "", nil)
		return
	case errors.Is(err, service.ErrUserNotFound):
		respondWithError(w, http.StatusBadRequest, "List owner does not exist", "", nil)
		return
	case err != nil:
		respondWithError(w, http.StatusInternalServerError, "Failed to save list", "", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, list)
}

// DeleteList handles DELETE /lists/{id}
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", "", err)
		return
	}

	if err := h.listRepo.DeleteSpellingList(id); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete list", "", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListWords handles GET /lists/{id}/words
func (h *ListHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", "", err)
		return
	}

	words, err := h.listRepo.GetWords(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load words", "", err)
		return
	}
	if words == nil {
		words = []models.Word{}
	}
	respondJSON(w, http.StatusOK, words)
}

// GetWord handles GET /words/{id}
func (h *ListHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid word ID", "", err)
		return
	}

	word, err := h.listRepo.GetWord(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load word", "", err)
		return
	}
	if word == nil {
		respondWithError(w, http.StatusNotFound, "Word not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, word)
}

// PutWord handles PUT /words. A body with id -1 creates a new word.
func (h *ListHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	var word models.Word
	if err := json.NewDecoder(r.Body).Decode(&word); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	created := word.ID == models.NullRowID

	_, err := h.listService.SaveWord(&word)
	switch {
	case errors.Is(err, service.ErrWordEmptySpelling):
		respondWithError(w, http.StatusBadRequest, "Word spelling cannot be empty", "", nil)
		return
	case err != nil:
		respondWithError(w, http.StatusInternalServerError, "Failed to save word", "", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, word)
}

// DeleteWord handles DELETE /words/{id}
func (h *ListHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid word ID", "", err)
		return
	}

	if err := h.listRepo.DeleteWord(id); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete word", "", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// PrepareAudio handles POST /lists/{id}/audio, warming the pronunciation
// cache for every word in the list
func (h *ListHandler) PrepareAudio(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", "", err)
		return
	}

	if err := h.listService.PrepareAudio(id); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to prepare audio", "", err)
		return
	}
	respondJSON(w, http.StatusAccepted, nil)
}

// ListDifficulties handles GET /difficulties
func (h *ListHandler) ListDifficulties(w http.ResponseWriter, r *http.Request) {
	difficulties, err := h.difficultyRepo.GetAllDifficulties()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load difficulties", "", err)
		return
	}
	respondJSON(w, http.StatusOK, difficulties)
}
