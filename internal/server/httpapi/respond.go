package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/notevault/internal/server/notes"
)

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Errors []fieldError `json:"errors"`
}

type noteResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	OwnerID    string   `json:"ownerId"`
	SharedWith []string `json:"sharedWith"`
}

func toNoteResponse(n *notes.Note) noteResponse {
	shared := n.SharedWith
	if shared == nil {
		shared = []string{}
	}
	return noteResponse{
		ID:         n.ID,
		Title:      n.Title,
		Body:       n.Body,
		OwnerID:    n.OwnerID,
		SharedWith: shared,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

func writeValidationErrors(w http.ResponseWriter, errs []fieldError) {
	writeJSON(w, http.StatusBadRequest, validationResponse{Errors: errs})
}

// writeServerError hides the cause from the client; the handler has already
// logged it.
func writeServerError(w http.ResponseWriter) {
	writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
}
