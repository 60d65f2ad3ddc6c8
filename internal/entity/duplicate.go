package entity

import (
	"time"

	"github.com/google/uuid"
)

// Suggestion represents a persisted duplicate-pair suggestion.
// JobID1/JobID2 are stored in canonical order (smaller UUID string first).
type Suggestion struct {
	ID              uuid.UUID  `json:"id"`
	JobID1          uuid.UUID  `json:"job_id_1"`
	JobID2          uuid.UUID  `json:"job_id_2"`
	CompanyScore    float64    `json:"company_score"`
	TitleScore      float64    `json:"title_score"`
	LocationScore   float64    `json:"location_score"`
	DateScore       float64    `json:"date_score"`
	SimilarityScore float64    `json:"similarity_score"`
	Status          string     `json:"status"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PendingSuggestion joins a pending suggestion with both referenced jobs.
type PendingSuggestion struct {
	Suggestion *Suggestion `json:"suggestion"`
	Job1       *Job        `json:"job1"`
	Job2       *Job        `json:"job2"`
}

// ScoredJob is one detection result: a candidate job annotated with its
// similarity against the trigger job.
type ScoredJob struct {
	Job             *Job    `json:"job"`
	CompanyScore    float64 `json:"company_score"`
	TitleScore      float64 `json:"title_score"`
	LocationScore   float64 `json:"location_score"`
	DateScore       float64 `json:"date_score"`
	SimilarityScore float64 `json:"similarity_score"`
}

// MergeSummary reports the outcome of a merge operation.
type MergeSummary struct {
	MasterJobID   uuid.UUID   `json:"master_job_id"`
	MergedJobIDs  []uuid.UUID `json:"merged_job_ids"`
	PlatformCount int         `json:"platform_count"`
	MergedAt      time.Time   `json:"merged_at"`
}
