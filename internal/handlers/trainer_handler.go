package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Barca0412/VocabMaster/internal/service"
	"github.com/Barca0412/VocabMaster/internal/wordlist"
)

// TrainerHandler handles review and statistics HTTP requests
type TrainerHandler struct {
	trainer *service.TrainerService
	lists   *wordlist.Manager
}

// NewTrainerHandler creates a new trainer handler
func NewTrainerHandler(trainer *service.TrainerService, lists *wordlist.Manager) *TrainerHandler {
	return &TrainerHandler{
		trainer: trainer,
		lists:   lists,
	}
}

// GetDue returns the words ready for review now
func (h *TrainerHandler) GetDue(w http.ResponseWriter, r *http.Request) {
	due := h.trainer.Due(queryLimit(r))

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"due":   due,
		"count": len(due),
	})
}

// RecordReview applies one review outcome
func (h *TrainerHandler) RecordReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word          string `json:"word"`
		Correct       *bool  `json:"correct"`
		Selected      string `json:"selected"`
		CorrectAnswer string `json:"correct_answer"`
	}
	if err := decodeRequest(r, &req); err != nil {
		respondWithServiceError(w, err)
		return
	}
	if req.Correct == nil {
		respondWithError(w, http.StatusBadRequest, "correct is required", "", nil)
		return
	}

	rec, err := h.trainer.RecordOutcome(req.Word, *req.Correct, req.Selected, req.CorrectAnswer)
	if err != nil && !errors.Is(err, service.ErrSnapshotSave) {
		respondWithServiceError(w, err)
		return
	}

	resp := map[string]interface{}{"record": rec}
	if err != nil {
		resp["warning"] = err.Error()
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// RecordView notes that a word was shown to the user
func (h *TrainerHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word string `json:"word"`
	}
	if err := decodeRequest(r, &req); err != nil {
		respondWithServiceError(w, err)
		return
	}

	rec, err := h.trainer.RecordView(req.Word)
	if err != nil && !errors.Is(err, service.ErrSnapshotSave) {
		respondWithServiceError(w, err)
		return
	}

	resp := map[string]interface{}{"record": rec}
	if err != nil {
		resp["warning"] = err.Error()
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// ImportWords adds words to the review queue, either given directly or
// taken from a saved list
func (h *TrainerHandler) ImportWords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Words []string `json:"words"`
		List  string   `json:"list"`
	}
	if err := decodeRequest(r, &req); err != nil {
		respondWithServiceError(w, err)
		return
	}

	words := req.Words
	if len(words) == 0 && req.List != "" {
		listWords, err := h.lists.Words(req.List)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		words = listWords
	}
	if len(words) == 0 {
		respondWithError(w, http.StatusBadRequest, "words or list is required", "", nil)
		return
	}

	added, err := h.trainer.ImportWords(words)
	if err != nil && !errors.Is(err, service.ErrSnapshotSave) {
		respondWithServiceError(w, err)
		return
	}

	resp := map[string]interface{}{"added": added}
	if err != nil {
		resp["warning"] = err.Error()
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// GetStats returns scheduling and engagement statistics
func (h *TrainerHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"scheduler": h.trainer.Stats(),
		"tracker":   h.trainer.TrackerStats(),
	})
}

// GetReport returns the structured study report
func (h *TrainerHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.trainer.Report())
}

// GetWeakWords returns words flagged for priority review
func (h *TrainerHandler) GetWeakWords(w http.ResponseWriter, r *http.Request) {
	weak := h.trainer.WeakWords(queryLimit(r))

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"weak":  weak,
		"count": len(weak),
	})
}

// GetRecentMistakes returns recently missed words
func (h *TrainerHandler) GetRecentMistakes(w http.ResponseWriter, r *http.Request) {
	mistakes := h.trainer.RecentMistakes(queryLimit(r))

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"mistakes": mistakes,
		"count":    len(mistakes),
	})
}

// queryLimit parses the optional limit query parameter. Absent or
// malformed values mean the service default.
func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}
