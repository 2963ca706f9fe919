package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/notevault/internal/common"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w, []fieldError{{Field: "body", Message: "invalid JSON"}})
		return
	}

	if errs := validateCredentials(req.Username, req.Password); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	token, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUserExists) {
			writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		s.logger.Error(r.Context(), "registration failed", "username", req.Username, "err", err.Error())
		writeServerError(w)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", req.Username)
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w, []fieldError{{Field: "body", Message: "invalid JSON"}})
		return
	}

	if errs := validateCredentials(req.Username, req.Password); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			// same answer for unknown user and wrong password
			writeMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "err", err.Error())
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
