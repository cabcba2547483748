package handlers

import (
	"io"
	"net/http"

	"github.com/Barca0412/VocabMaster/internal/settings"
)

// SettingsHandler handles user preference HTTP requests
type SettingsHandler struct {
	settings *settings.Store
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *settings.Store) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings returns the current settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.settings.Get())
}

// UpdateSettings merges a partial settings document and returns the
// result. Fields missing from the body keep their values.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to read request body", "", err)
		return
	}

	updated, err := h.settings.Patch(body)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}
