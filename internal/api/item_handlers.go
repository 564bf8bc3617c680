package api

import (
	"net/http"
	"strconv"

	"github.com/wordbin/wordbin/internal/errors"
	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/models"
)

type studySetImportRequest struct {
	LanguageCode string   `json:"language_code"`
	ConceptIDs   []string `json:"concept_ids"`
}

func (s *Server) handleStudySetImport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req studySetImportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.LanguageCode == "" {
		handleError(w, r, errors.NewValidationError("language_code", "cannot be empty"))
		return
	}
	if len(req.ConceptIDs) == 0 {
		handleError(w, r, errors.NewValidationError("concept_ids", "cannot be empty"))
		return
	}

	// Verify the user before queueing so a bad ID fails fast.
	if _, err := s.UserService.GetUser(r.Context(), userID); err != nil {
		handleError(w, r, err)
		return
	}

	log = log.WithFields(map[string]any{
		"user_id":  userID,
		"language": req.LanguageCode,
		"concepts": len(req.ConceptIDs),
	})

	if err := s.JobQueue.EnqueueStudySetImport(userID, req.LanguageCode, req.ConceptIDs); err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	log.Info("study set import queued")
	respondJSON(w, r, http.StatusAccepted, map[string]any{"queued": len(req.ConceptIDs)})
}

func (s *Server) handleDueItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	language := r.URL.Query().Get("language")

	limit := s.DueItemsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	log.Debug("listing due items: user_id=%d, language=%s, limit=%d", userID, language, limit)

	items, err := s.ItemService.DueItems(r.Context(), userID, language, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if items == nil {
		items = []models.LearningItem{}
	}
	respondJSON(w, r, http.StatusOK, items)
}
