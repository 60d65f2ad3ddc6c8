package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform represents one application-platform entry attached to a job.
type Platform struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	Platform   string    `json:"platform"`
	URL        *string   `json:"url,omitempty"`
	ExternalID *string   `json:"external_id,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
