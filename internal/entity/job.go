package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Job represents a tracked job application for data transfer between layers.
type Job struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Company         string     `json:"company"`
	Title           string     `json:"title"`
	City            *string    `json:"city,omitempty"`
	State           *string    `json:"state,omitempty"`
	Country         *string    `json:"country,omitempty"`
	AppliedAt       *time.Time `json:"applied_at,omitempty"`
	Status          string     `json:"status"`
	IsDuplicate     bool       `json:"is_duplicate"`
	MergedIntoJobID *uuid.UUID `json:"merged_into_job_id,omitempty"`
	PlatformCount   int        `json:"platform_count"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Location joins the city/state/country parts with single spaces,
// skipping missing parts.
func (j *Job) Location() string {
	parts := make([]string, 0, 3)
	for _, p := range []*string{j.City, j.State, j.Country} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, " ")
}
