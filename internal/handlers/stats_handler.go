package handlers

import (
	"net/http"

	"spelltest/internal/service"
)

// StatsHandler exposes spelling test results over HTTP
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStat handles GET /stats/{id}
func (h *StatsHandler) GetStat(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid stat ID", "", err)
		return
	}

	summary, err := h.statsService.GetStat(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load stat", "", err)
		return
	}
	if summary == nil {
		respondWithError(w, http.StatusNotFound, "Stat not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// ListListStats handles GET /lists/{id}/stats
func (h *StatsHandler) ListListStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", "", err)
		return
	}

	stats, err := h.statsService.GetListStats(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load stats", "", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// ListUserStats handles GET /users/{id}/stats
func (h *StatsHandler) ListUserStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID", "", err)
		return
	}

	stats, err := h.statsService.GetUserStats(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load stats", "", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
