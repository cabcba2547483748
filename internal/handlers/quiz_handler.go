package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Barca0412/VocabMaster/internal/service"
	"github.com/Barca0412/VocabMaster/internal/settings"
)

// QuizHandler handles quiz session HTTP requests
type QuizHandler struct {
	quiz     *service.QuizService
	settings *settings.Store
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quiz *service.QuizService, settings *settings.Store) *QuizHandler {
	return &QuizHandler{
		quiz:     quiz,
		settings: settings,
	}
}

// StartQuiz opens a session over the due words
func (h *QuizHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Limit int `json:"limit"`
	}
	if err := decodeRequest(r, &req); err != nil {
		respondWithServiceError(w, err)
		return
	}

	session, err := h.quiz.Start(req.Limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	prompt, err := h.quiz.Current(session.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"session": session,
		"prompt":  prompt,
	})
}

// SubmitAnswer grades one answer within a session
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	var req struct {
		Selected string `json:"selected"`
	}
	if err := decodeRequest(r, &req); err != nil {
		respondWithServiceError(w, err)
		return
	}

	result, err := h.quiz.Submit(sessionID, req.Selected)
	if err != nil && !errors.Is(err, service.ErrSnapshotSave) {
		respondWithServiceError(w, err)
		return
	}

	resp := map[string]interface{}{"result": result}
	if err != nil {
		resp["warning"] = err.Error()
	}
	if !result.Done {
		if prompt, perr := h.quiz.Current(sessionID); perr == nil {
			resp["prompt"] = prompt
		}
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// FinishQuiz closes a session and returns its tally
func (h *QuizHandler) FinishQuiz(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	summary, err := h.quiz.Finish(sessionID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	// Fold the session into the long-running study stats.
	if _, err := h.settings.AddStudySession(summary.Correct, int(summary.Duration.Seconds())); err != nil {
		log.Printf("Error recording study session: %v", err)
	}

	respondWithJSON(w, http.StatusOK, summary)
}
