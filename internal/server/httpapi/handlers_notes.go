package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/common"
)

type createNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type updateNoteRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

type shareNoteRequest struct {
	Username string `json:"username"`
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w, []fieldError{{Field: "body", Message: "invalid JSON"}})
		return
	}

	var errs []fieldError
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, fieldError{Field: "title", Message: "must not be empty"})
	}
	if strings.TrimSpace(req.Body) == "" {
		errs = append(errs, fieldError{Field: "body", Message: "must not be empty"})
	}
	if errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	note, err := s.notes.Create(r.Context(), identity.UserID, req.Title, req.Body)
	if err != nil {
		s.logger.Error(r.Context(), "note creation failed", "err", err.Error())
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	list, err := s.notes.List(r.Context(), identity.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "note listing failed", "err", err.Error())
		writeServerError(w)
		return
	}

	result := make([]noteResponse, 0, len(list))
	for _, note := range list {
		result = append(result, toNoteResponse(note))
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	noteID := r.PathValue("id")
	if !validNoteID(noteID) {
		writeValidationErrors(w, []fieldError{{Field: "id", Message: "must be a valid note id"}})
		return
	}

	note, err := s.notes.Get(r.Context(), identity.UserID, noteID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		s.logger.Error(r.Context(), "note lookup failed", "err", err.Error())
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	noteID := r.PathValue("id")
	if !validNoteID(noteID) {
		writeValidationErrors(w, []fieldError{{Field: "id", Message: "must be a valid note id"}})
		return
	}

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w, []fieldError{{Field: "body", Message: "invalid JSON"}})
		return
	}

	// an omitted field keeps its value; a present-but-empty one is an error
	var errs []fieldError
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, fieldError{Field: "title", Message: "must not be empty"})
	}
	if req.Body != nil && strings.TrimSpace(*req.Body) == "" {
		errs = append(errs, fieldError{Field: "body", Message: "must not be empty"})
	}
	if errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	note, err := s.notes.Update(r.Context(), identity.UserID, noteID, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		s.logger.Error(r.Context(), "note update failed", "err", err.Error())
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	noteID := r.PathValue("id")
	if !validNoteID(noteID) {
		writeValidationErrors(w, []fieldError{{Field: "id", Message: "must be a valid note id"}})
		return
	}

	if err := s.notes.Delete(r.Context(), identity.UserID, noteID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		s.logger.Error(r.Context(), "note deletion failed", "err", err.Error())
		writeServerError(w)
		return
	}

	writeMessage(w, http.StatusOK, "Note deleted")
}

func (s *Server) handleShareNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	noteID := r.PathValue("id")
	if !validNoteID(noteID) {
		writeValidationErrors(w, []fieldError{{Field: "id", Message: "must be a valid note id"}})
		return
	}

	var req shareNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w, []fieldError{{Field: "body", Message: "invalid JSON"}})
		return
	}
	if req.Username == "" {
		writeValidationErrors(w, []fieldError{{Field: "username", Message: "must not be empty"}})
		return
	}

	err := s.notes.Share(r.Context(), identity.UserID, noteID, req.Username)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "Note shared successfully")
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, http.StatusNotFound, "Note not found")
	case errors.Is(err, common.ErrorPermissionDenied):
		writeMessage(w, http.StatusForbidden, "Permission denied")
	case errors.Is(err, common.ErrorUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, common.ErrorAlreadyShared):
		writeMessage(w, http.StatusBadRequest, "Note is already shared with this user")
	default:
		s.logger.Error(r.Context(), "note sharing failed", "err", err.Error())
		writeServerError(w)
	}
}
