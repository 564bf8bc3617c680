package api

import (
	"net/http"

	"github.com/wordbin/wordbin/internal/errors"
	"github.com/wordbin/wordbin/internal/logger"
)

func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	language := r.URL.Query().Get("language")
	if language == "" {
		handleError(w, r, errors.NewBadRequestError("language parameter required"))
		return
	}

	log.Debug("fetching distribution: user_id=%d, language=%s", userID, language)

	dist, err := s.DistributionService.Distribution(r.Context(), userID, language)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, dist)
}
