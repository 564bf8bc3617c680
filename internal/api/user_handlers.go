package api

import (
	"net/http"

	"github.com/wordbin/wordbin/internal/logger"
)

type createUserRequest struct {
	Username string `json:"username"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("creating user: username=%s", req.Username)

	user, err := s.UserService.CreateUser(r.Context(), req.Username)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("user created: id=%d", user.ID)
	respondJSON(w, r, http.StatusCreated, user)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	user, err := s.UserService.GetUser(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, user)
}
