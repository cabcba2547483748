package handlers

import "net/http"

// RegisterRoutes attaches the full API surface to mux. Kept in one
// place so the server and the handler tests serve the same table.
func RegisterRoutes(
	mux *http.ServeMux,
	trainer *TrainerHandler,
	quiz *QuizHandler,
	lists *ListHandler,
	settings *SettingsHandler,
	status *StatusHandler,
) {
	// Review queue and statistics
	mux.HandleFunc("GET /api/due", trainer.GetDue)
	mux.HandleFunc("POST /api/review", trainer.RecordReview)
	mux.HandleFunc("POST /api/view", trainer.RecordView)
	mux.HandleFunc("POST /api/import", trainer.ImportWords)
	mux.HandleFunc("GET /api/stats", trainer.GetStats)
	mux.HandleFunc("GET /api/report", trainer.GetReport)
	mux.HandleFunc("GET /api/weak", trainer.GetWeakWords)
	mux.HandleFunc("GET /api/mistakes", trainer.GetRecentMistakes)

	// Quiz sessions
	mux.HandleFunc("POST /api/quiz/start", quiz.StartQuiz)
	mux.HandleFunc("POST /api/quiz/{id}/answer", quiz.SubmitAnswer)
	mux.HandleFunc("POST /api/quiz/{id}/finish", quiz.FinishQuiz)

	// Word lists
	mux.HandleFunc("GET /api/lists", lists.GetLists)
	mux.HandleFunc("POST /api/lists", lists.CreateList)
	mux.HandleFunc("GET /api/lists/{name}", lists.GetList)
	mux.HandleFunc("DELETE /api/lists/{name}", lists.DeleteList)

	// Preferences and health
	mux.HandleFunc("GET /api/settings", settings.GetSettings)
	mux.HandleFunc("PUT /api/settings", settings.UpdateSettings)
	mux.HandleFunc("GET /api/status", status.GetStatus)
}
