package api

import (
	"net/http"

	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/models"
)

type updateConfigRequest struct {
	MaxBins            int    `json:"max_bins"`
	IntervalStartHours int    `json:"interval_start_hours"`
	Algorithm          string `json:"algorithm"`
}

type updateConfigResponse struct {
	UpdatedCount int `json:"updated_count"`
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	cfg, err := s.ConfigService.GetConfig(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, cfg)
}

func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req updateConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	newCfg := models.SchedulerConfig{
		MaxBins:            req.MaxBins,
		IntervalStartHours: req.IntervalStartHours,
		Algorithm:          models.Algorithm(req.Algorithm),
	}

	log = log.WithFields(map[string]any{
		"user_id":   userID,
		"max_bins":  req.MaxBins,
		"algorithm": req.Algorithm,
	})
	log.Debug("updating scheduler config")

	updated, err := s.ConfigService.UpdateConfig(r.Context(), userID, newCfg)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("scheduler config updated, %d items rescheduled", updated)
	respondJSON(w, r, http.StatusOK, updateConfigResponse{UpdatedCount: updated})
}
