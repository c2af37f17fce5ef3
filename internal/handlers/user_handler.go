package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"spelltest/internal/models"
	"spelltest/internal/repository"
)

// UserHandler exposes user CRUD over HTTP
type UserHandler struct {
	userRepo *repository.UserRepository
	listRepo *repository.ListRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo *repository.UserRepository, listRepo *repository.ListRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo, listRepo: listRepo}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.GetAllUsers()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load users", "", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID", "", err)
		return
	}

	user, err := h.userRepo.GetUser(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load user", "", err)
		return
	}
	if user == nil {
		respondWithError(w, http.StatusNotFound, "User not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// PutUser handles PUT /users. A body with id -1 creates a new user.
func (h *UserHandler) PutUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	created := user.ID == models.NullRowID

	if _, err := h.userRepo.PutUser(&user); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save user", "", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, user)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID", "", err)
		return
	}

	if err := h.userRepo.DeleteUser(id); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete user", "", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListUserLists handles GET /users/{id}/lists
func (h *UserHandler) ListUserLists(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID", "", err)
		return
	}

	lists, err := h.listRepo.GetSpellingLists(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load lists", "", err)
		return
	}
	if lists == nil {
		lists = []models.SpellingList{}
	}
	respondJSON(w, http.StatusOK, lists)
}

// pathID parses an int64 path value
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
