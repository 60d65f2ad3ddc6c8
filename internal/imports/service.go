package imports

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/jobs"
	"github.com/adeolu-ojo/applytrack/internal/utils"
)

// jobRow is one element of the imported JSON array.
type jobRow struct {
	Company   string `json:"company"`
	Title     string `json:"title"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country,omitempty"`
	AppliedAt string `json:"applied_at,omitempty"`
	Status    string `json:"status,omitempty"`
	Platform  string `json:"platform,omitempty"`
	URL       string `json:"url,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// RowError pins an import failure to its array index.
type RowError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// Result summarizes a bulk import. Row failures do not abort the rest
// of the batch.
type Result struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors,omitempty"`
}

// JobWriter is the slice of the job service the importer needs.
type JobWriter interface {
	CreateJob(ctx context.Context, req jobs.CreateJobRequest) (*entity.Job, error)
	AttachPlatform(ctx context.Context, req jobs.AttachPlatformRequest) (*entity.Platform, error)
}

// Service imports job rows from a JSON payload.
type Service struct {
	jobService JobWriter
	schema     *jsonschema.Schema
	logger     *slog.Logger
}

// NewService creates a new import service.
func NewService(jobService JobWriter, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	schema, err := CompileSchema(BuildJobJSONSchema())
	if err != nil {
		return nil, err
	}
	return &Service{
		jobService: jobService,
		schema:     schema,
		logger:     logger,
	}, nil
}

// ImportJobs validates and inserts a JSON array of job rows for the
// user. Each row is validated against the job schema before insert;
// invalid rows are reported by index and skipped.
func (s *Service) ImportJobs(ctx context.Context, userID uuid.UUID, payload []byte) (*Result, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: payload must be a JSON array: %v", common.ErrValidation, err)
	}

	result := &Result{}
	for i, msg := range raw {
		if err := s.importRow(ctx, userID, msg); err != nil {
			result.Errors = append(result.Errors, RowError{Index: i, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	s.logger.Info("import finished",
		"user_id", userID,
		"imported", result.Imported,
		"failed", len(result.Errors))
	return result, nil
}

func (s *Service) importRow(ctx context.Context, userID uuid.UUID, msg json.RawMessage) error {
	var v any
	if err := json.Unmarshal(msg, &v); err != nil {
		return fmt.Errorf("invalid JSON: %v", err)
	}
	if err := s.schema.Validate(v); err != nil {
		return fmt.Errorf("row does not match schema: %v", err)
	}

	var row jobRow
	if err := json.Unmarshal(msg, &row); err != nil {
		return fmt.Errorf("decode row: %v", err)
	}

	var appliedAt *time.Time
	if row.AppliedAt != "" {
		t, err := utils.ParseYMD(row.AppliedAt)
		if err != nil {
			return fmt.Errorf("applied_at invalid (YYYY-MM-DD): %v", err)
		}
		appliedAt = &t
	}

	job, err := s.jobService.CreateJob(ctx, jobs.CreateJobRequest{
		UserID:    userID,
		Company:   row.Company,
		Title:     row.Title,
		City:      row.City,
		State:     row.State,
		Country:   row.Country,
		AppliedAt: appliedAt,
		Status:    row.Status,
		Notes:     row.Notes,
	})
	if err != nil {
		return err
	}

	if row.Platform != "" {
		if _, err := s.jobService.AttachPlatform(ctx, jobs.AttachPlatformRequest{
			UserID:   userID,
			JobID:    job.ID,
			Platform: row.Platform,
			URL:      row.URL,
		}); err != nil {
			// The job itself landed; report the platform problem only.
			return fmt.Errorf("job imported but platform rejected: %v", err)
		}
	}
	return nil
}
