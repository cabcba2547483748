package handlers

import (
	"net/http"

	"github.com/Barca0412/VocabMaster/internal/service"
)

// StatusHandler reports application health and load diagnostics
type StatusHandler struct {
	version string
	backend string
	trainer *service.TrainerService
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(version, backend string, trainer *service.TrainerService) *StatusHandler {
	return &StatusHandler{
		version: version,
		backend: backend,
		trainer: trainer,
	}
}

// GetStatus returns version, backend, counters, and any snapshot load
// warnings
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	stats := h.trainer.Stats()

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"name":          "VocabMaster",
		"version":       h.version,
		"store":         h.backend,
		"total_words":   stats.TotalWords,
		"due_count":     stats.DueCount,
		"load_warnings": h.trainer.LoadWarnings(),
	})
}
