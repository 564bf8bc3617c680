package models

import "time"

type User struct {
	ID              int64           `json:"id"`
	Username        string          `json:"username"`
	Config          SchedulerConfig `json:"config"`
	CreatedAt       time.Time       `json:"created_at"`
	ConfigUpdatedAt time.Time       `json:"config_updated_at"`
}
