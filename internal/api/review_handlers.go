package api

import (
	"net/http"

	"github.com/wordbin/wordbin/internal/errors"
	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/models"
)

type reviewRequest struct {
	ConceptID    string `json:"concept_id"`
	LanguageCode string `json:"language_code"`
	Outcome      string `json:"outcome"`
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	outcome, ok := models.ParseReviewOutcome(req.Outcome)
	if !ok {
		log.Warn("invalid review outcome: %s", req.Outcome)
		handleError(w, r, errors.NewValidationError("outcome", `must be one of "correct", "incorrect", "hint_used"`))
		return
	}

	log = log.WithFields(map[string]any{
		"user_id":    userID,
		"concept_id": req.ConceptID,
		"outcome":    outcome,
	})
	log.Debug("processing review")

	item, err := s.ReviewService.ProcessReview(r.Context(), userID, req.ConceptID, req.LanguageCode, outcome)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("review recorded")
	respondJSON(w, r, http.StatusOK, item)
}
