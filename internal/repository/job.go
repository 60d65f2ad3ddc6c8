package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-ojo/applytrack/constants"
	"github.com/adeolu-ojo/applytrack/gen/ent"
	"github.com/adeolu-ojo/applytrack/gen/ent/job"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/utils"
)

// CreateJobRequest wraps parameters for creating a job.
type CreateJobRequest struct {
	UserID    uuid.UUID
	Company   string
	Title     string
	City      string
	State     string
	Country   string
	AppliedAt *time.Time
	Status    constants.ApplicationStatus
	Notes     string
}

// UpdateJobRequest carries the mutable job fields; nil means "leave as is".
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

type JobRepository interface {
	GetForUser(ctx context.Context, userID, jobID uuid.UUID) (*entity.Job, error)
	GetManyForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Job, error)
	ListActiveExcluding(ctx context.Context, userID, excludeID uuid.UUID) ([]*entity.Job, error)
	ListForUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Job, error)
	Create(ctx context.Context, req *CreateJobRequest) (*entity.Job, error)
	Update(ctx context.Context, userID, jobID uuid.UUID, req *UpdateJobRequest) (*entity.Job, error)
	MarkMerged(ctx context.Context, jobID, masterJobID uuid.UUID) error
	SetPlatformCount(ctx context.Context, jobID uuid.UUID, count int) error
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{
		client: client,
		logger: logger,
	}
}

func (r *jobRepository) GetForUser(ctx context.Context, userID, jobID uuid.UUID) (*entity.Job, error) {
	row, err := r.client.Job.Query().
		Where(job.ID(jobID), job.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get job", "job_id", jobID, "user_id", userID, "error", err)
		return nil, err
	}
	return utils.ToJob(row), nil
}

func (r *jobRepository) GetManyForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Job, error) {
	rows, err := r.client.Job.Query().
		Where(job.UserID(userID), job.IDIn(ids...)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to get jobs", "user_id", userID, "error", err)
		return nil, err
	}
	return utils.ToJobs(rows), nil
}

func (r *jobRepository) ListActiveExcluding(ctx context.Context, userID, excludeID uuid.UUID) ([]*entity.Job, error) {
	rows, err := r.client.Job.Query().
		Where(
			job.UserID(userID),
			job.IsDuplicate(false),
			job.IDNEQ(excludeID),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list candidate jobs", "user_id", userID, "error", err)
		return nil, err
	}
	return utils.ToJobs(rows), nil
}

func (r *jobRepository) ListForUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Job, error) {
	q := r.client.Job.Query().Where(job.UserID(userID))
	if fromDate != nil {
		q = q.Where(job.AppliedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(job.AppliedAtLTE(*toDate))
	}
	rows, err := q.Order(job.ByAppliedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list jobs", "user_id", userID, "error", err)
		return nil, err
	}
	return utils.ToJobs(rows), nil
}

func (r *jobRepository) Create(ctx context.Context, req *CreateJobRequest) (*entity.Job, error) {
	builder := r.client.Job.Create().
		SetUserID(req.UserID).
		SetCompany(req.Company).
		SetTitle(req.Title).
		SetNillableAppliedAt(req.AppliedAt)

	if req.City != "" {
		builder = builder.SetCity(req.City)
	}
	if req.State != "" {
		builder = builder.SetState(req.State)
	}
	if req.Country != "" {
		builder = builder.SetCountry(req.Country)
	}
	if req.Status != "" {
		builder = builder.SetStatus(string(req.Status))
	}
	if req.Notes != "" {
		builder = builder.SetNotes(req.Notes)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create job", "user_id", req.UserID, "error", err)
		return nil, err
	}
	return utils.ToJob(row), nil
}

func (r *jobRepository) Update(ctx context.Context, userID, jobID uuid.UUID, req *UpdateJobRequest) (*entity.Job, error) {
	// Ownership check happens before the blind UpdateOneID.
	if _, err := r.GetForUser(ctx, userID, jobID); err != nil {
		return nil, err
	}

	builder := r.client.Job.UpdateOneID(jobID).
		SetNillableCompany(req.Company).
		SetNillableTitle(req.Title).
		SetNillableCity(req.City).
		SetNillableState(req.State).
		SetNillableCountry(req.Country).
		SetNillableAppliedAt(req.AppliedAt).
		SetNillableStatus(req.Status).
		SetNillableNotes(req.Notes)

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update job", "job_id", jobID, "error", err)
		return nil, err
	}
	return utils.ToJob(row), nil
}

func (r *jobRepository) MarkMerged(ctx context.Context, jobID, masterJobID uuid.UUID) error {
	err := r.client.Job.UpdateOneID(jobID).
		SetIsDuplicate(true).
		SetMergedIntoJobID(masterJobID).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark job as duplicate", "job_id", jobID, "master_job_id", masterJobID, "error", err)
	}
	return err
}

func (r *jobRepository) SetPlatformCount(ctx context.Context, jobID uuid.UUID, count int) error {
	err := r.client.Job.UpdateOneID(jobID).
		SetPlatformCount(count).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set platform count", "job_id", jobID, "error", err)
	}
	return err
}
