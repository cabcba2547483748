package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/Barca0412/VocabMaster/internal/service"
	"github.com/Barca0412/VocabMaster/internal/validation"
	"github.com/Barca0412/VocabMaster/internal/wordlist"
)

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondWithJSON(w, status, map[string]string{"error": userMsg})
}

// respondWithServiceError maps service-layer errors to status codes.
// Validation problems and stale session state are the caller's fault;
// everything else is a 500.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var verr validation.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithError(w, http.StatusBadRequest, verr.Error(), "", nil)
	case errors.Is(err, wordlist.ErrListNotFound):
		respondWithError(w, http.StatusNotFound, "List not found", "", nil)
	case errors.Is(err, service.ErrSessionNotFound):
		respondWithError(w, http.StatusBadRequest, "No active quiz session", "", nil)
	case errors.Is(err, service.ErrSessionExhausted):
		respondWithError(w, http.StatusBadRequest, "Quiz session has no words left", "", nil)
	case errors.Is(err, service.ErrNoDueWords):
		respondWithError(w, http.StatusBadRequest, "No words due for review", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Unhandled service error", err)
	}
}

// decodeRequest decodes a JSON request body. An empty body is treated
// as an empty request, so zero-value fields apply.
func decodeRequest(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return validation.ValidationError{Field: "body", Message: "invalid JSON body"}
	}
	return nil
}
