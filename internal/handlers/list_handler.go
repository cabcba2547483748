package handlers

import (
	"net/http"

	"github.com/Barca0412/VocabMaster/internal/wordlist"
)

// ListHandler handles word list HTTP requests
type ListHandler struct {
	lists *wordlist.Manager
}

// NewListHandler creates a new list handler
func NewListHandler(lists *wordlist.Manager) *ListHandler {
	return &ListHandler{lists: lists}
}

// GetLists returns summaries of every saved list
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.lists.Summaries()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to read lists", "Error listing word lists", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"lists": summaries,
		"count": len(summaries),
	})
}

// CreateList saves a new list from free text
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Text string `json:"text"`
	}
	if err := decodeRequest(r, &req); err != nil {
		respondWithServiceError(w, err)
		return
	}

	list, err := h.lists.ImportText(req.Name, req.Text)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, list)
}

// GetList returns one list with its words
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	list, err := h.lists.Load(r.PathValue("name"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, list)
}

// DeleteList removes a saved list
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	if err := h.lists.Delete(r.PathValue("name")); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
