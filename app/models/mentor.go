package models

import (
	"time"

	"github.com/lib/pq"
)

// Mentor represents one teaching mentor. HourlyRate is the rate applied
// when payroll is generated.
type Mentor struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	HourlyRate     int64          `json:"hourly_rate"`
	TeachingLevels pq.StringArray `json:"teaching_levels"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
