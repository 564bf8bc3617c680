package api

import (
	"database/sql"

	"github.com/wordbin/wordbin/internal/jobs"
	"github.com/wordbin/wordbin/internal/services"
)

// Server holds the services the HTTP handlers dispatch to.
type Server struct {
	UserService         services.UserService
	ReviewService       services.ReviewService
	ConfigService       services.ConfigService
	DistributionService services.DistributionService
	ItemService         services.ItemService
	JobQueue            jobs.JobQueue
	DB                  *sql.DB
	DueItemsLimit       int
}
