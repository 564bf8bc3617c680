package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", s.handleCreateUser)
		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetUser)
			r.Get("/config", s.handleGetConfig)
			r.Put("/config", s.handleUpdateConfig)
			r.Post("/review", s.handleReview)
			r.Get("/distribution", s.handleDistribution)
			r.Get("/due", s.handleDueItems)
			r.Post("/study-set", s.handleStudySetImport)
		})
	})

	return r
}
