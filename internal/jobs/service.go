package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-ojo/applytrack/constants"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/repository"
)

// DuplicateFinder scans a user's jobs for likely duplicates of the
// given job and records pending suggestions.
type DuplicateFinder interface {
	FindPotentialDuplicates(ctx context.Context, userID, jobID uuid.UUID) ([]*entity.ScoredJob, error)
}

// Service handles job application business logic.
type Service struct {
	jobRepo      repository.JobRepository
	platformRepo repository.PlatformRepository
	finder       DuplicateFinder
	logger       *slog.Logger
}

// NewService creates a new job service. finder may be nil to disable
// duplicate detection on create.
func NewService(jobRepo repository.JobRepository, platformRepo repository.PlatformRepository, finder DuplicateFinder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		jobRepo:      jobRepo,
		platformRepo: platformRepo,
		finder:       finder,
		logger:       logger,
	}
}

// CreateJobRequest represents job creation parameters.
type CreateJobRequest struct {
	UserID    uuid.UUID
	Company   string
	Title     string
	City      string
	State     string
	Country   string
	AppliedAt *time.Time
	Status    string
	Notes     string
}

// CreateJob inserts a job and then scans the user's existing jobs for
// duplicates. Detection failures are logged, never surfaced: the job
// is already persisted and the scan can be re-run later.
func (s *Service) CreateJob(ctx context.Context, req CreateJobRequest) (*entity.Job, error) {
	status := req.Status
	if status == "" {
		status = string(constants.StatusApplied)
	}

	v := common.NewValidator()
	v.Field("company", req.Company, common.Required, common.MaxLength(255))
	v.Field("title", req.Title, common.Required, common.MaxLength(255))
	v.Field("status", status, common.OneOf(constants.ApplicationStatuses()...))
	if err := v.Error(); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.Create(ctx, &repository.CreateJobRequest{
		UserID:    req.UserID,
		Company:   req.Company,
		Title:     req.Title,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		AppliedAt: req.AppliedAt,
		Status:    constants.ApplicationStatus(status),
		Notes:     req.Notes,
	})
	if err != nil {
		s.logger.Error("failed to create job", "user_id", req.UserID, "error", err)
		return nil, err
	}
	s.logger.Info("job created", "job_id", job.ID, "user_id", job.UserID, "company", job.Company)

	if s.finder != nil {
		if _, err := s.finder.FindPotentialDuplicates(ctx, job.UserID, job.ID); err != nil {
			s.logger.Warn("duplicate scan after create failed", "job_id", job.ID, "error", err)
		}
	}
	return job, nil
}

// GetJob returns a single job owned by the user.
func (s *Service) GetJob(ctx context.Context, userID, jobID uuid.UUID) (*entity.Job, error) {
	return s.jobRepo.GetForUser(ctx, userID, jobID)
}

// ListJobsRequest represents job listing parameters.
type ListJobsRequest struct {
	UserID   uuid.UUID
	FromDate *time.Time
	ToDate   *time.Time
}

// ListJobs returns the user's jobs, newest first.
func (s *Service) ListJobs(ctx context.Context, req ListJobsRequest) ([]*entity.Job, error) {
	jobs, err := s.jobRepo.ListForUser(ctx, req.UserID, req.FromDate, req.ToDate)
	if err != nil {
		s.logger.Error("failed to list jobs", "user_id", req.UserID, "error", err)
		return nil, err
	}
	return jobs, nil
}

// UpdateJobRequest carries the mutable job fields; nil leaves a field
// unchanged.
type UpdateJobRequest struct {
	Company   *string
	Title     *string
	City      *string
	State     *string
	Country   *string
	AppliedAt *time.Time
	Status    *string
	Notes     *string
}

// UpdateJob applies a partial update to a job owned by the user.
func (s *Service) UpdateJob(ctx context.Context, userID, jobID uuid.UUID, req UpdateJobRequest) (*entity.Job, error) {
	v := common.NewValidator()
	if req.Company != nil {
		v.Field("company", *req.Company, common.Required, common.MaxLength(255))
	}
	if req.Title != nil {
		v.Field("title", *req.Title, common.Required, common.MaxLength(255))
	}
	if req.Status != nil {
		v.Field("status", *req.Status, common.OneOf(constants.ApplicationStatuses()...))
	}
	if err := v.Error(); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.Update(ctx, userID, jobID, &repository.UpdateJobRequest{
		Company:   req.Company,
		Title:     req.Title,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		AppliedAt: req.AppliedAt,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("job updated", "job_id", jobID, "user_id", userID)
	return job, nil
}

// AttachPlatformRequest represents a platform listing attachment.
type AttachPlatformRequest struct {
	UserID     uuid.UUID
	JobID      uuid.UUID
	Platform   string
	URL        string
	ExternalID string
	Notes      string
}

// AttachPlatform records that the job was seen on another platform.
// The platform name is canonicalized, one row per (job, platform) is
// enforced, and the job's platform_count is kept in sync.
func (s *Service) AttachPlatform(ctx context.Context, req AttachPlatformRequest) (*entity.Platform, error) {
	platform, ok := constants.CanonicalizePlatform(req.Platform)
	if !ok {
		return nil, fmt.Errorf("%w: unknown platform %q", common.ErrValidation, req.Platform)
	}

	job, err := s.jobRepo.GetForUser(ctx, req.UserID, req.JobID)
	if err != nil {
		return nil, err
	}
	if job.IsDuplicate {
		return nil, fmt.Errorf("%w: job %s was merged into another job", common.ErrConflict, job.ID)
	}

	created, err := s.platformRepo.Create(ctx, &repository.CreatePlatformRequest{
		JobID:      job.ID,
		Platform:   string(platform),
		URL:        req.URL,
		ExternalID: req.ExternalID,
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			s.logger.Info("platform already attached", "job_id", job.ID, "platform", platform)
		}
		return nil, err
	}

	count, err := s.platformRepo.CountByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	if err := s.jobRepo.SetPlatformCount(ctx, job.ID, count); err != nil {
		return nil, err
	}

	s.logger.Info("platform attached", "job_id", job.ID, "platform", platform, "platform_count", count)
	return created, nil
}

// ListPlatforms returns the platform listings recorded for a job.
func (s *Service) ListPlatforms(ctx context.Context, userID, jobID uuid.UUID) ([]*entity.Platform, error) {
	if _, err := s.jobRepo.GetForUser(ctx, userID, jobID); err != nil {
		return nil, err
	}
	return s.platformRepo.ListByJob(ctx, jobID)
}
