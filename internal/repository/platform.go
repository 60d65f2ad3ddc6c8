package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adeolu-ojo/applytrack/gen/ent"
	"github.com/adeolu-ojo/applytrack/gen/ent/applicationplatform"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/utils"
)

// CreatePlatformRequest wraps parameters for attaching a platform entry.
type CreatePlatformRequest struct {
	JobID      uuid.UUID
	Platform   string
	URL        string
	ExternalID string
	Notes      string
}

type PlatformRepository interface {
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Platform, error)
	ExistsForJob(ctx context.Context, jobID uuid.UUID, platform string) (bool, error)
	Create(ctx context.Context, req *CreatePlatformRequest) (*entity.Platform, error)
	Reparent(ctx context.Context, platformID, newJobID uuid.UUID) error
	Delete(ctx context.Context, platformID uuid.UUID) error
	CountByJob(ctx context.Context, jobID uuid.UUID) (int, error)
}

type platformRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPlatformRepository(client *ent.Client, logger *slog.Logger) PlatformRepository {
	return &platformRepository{
		client: client,
		logger: logger,
	}
}

func (r *platformRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Platform, error) {
	rows, err := r.client.ApplicationPlatform.Query().
		Where(applicationplatform.JobID(jobID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list platforms", "job_id", jobID, "error", err)
		return nil, err
	}
	out := make([]*entity.Platform, len(rows))
	for i, row := range rows {
		out[i] = utils.ToPlatform(row)
	}
	return out, nil
}

func (r *platformRepository) ExistsForJob(ctx context.Context, jobID uuid.UUID, platform string) (bool, error) {
	exists, err := r.client.ApplicationPlatform.Query().
		Where(
			applicationplatform.JobID(jobID),
			applicationplatform.Platform(platform),
		).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check platform existence", "job_id", jobID, "platform", platform, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *platformRepository) Create(ctx context.Context, req *CreatePlatformRequest) (*entity.Platform, error) {
	builder := r.client.ApplicationPlatform.Create().
		SetJobID(req.JobID).
		SetPlatform(req.Platform)

	if req.URL != "" {
		builder = builder.SetURL(req.URL)
	}
	if req.ExternalID != "" {
		builder = builder.SetExternalID(req.ExternalID)
	}
	if req.Notes != "" {
		builder = builder.SetNotes(req.Notes)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.ErrConflict
		}
		r.logger.Error("failed to create platform", "job_id", req.JobID, "platform", req.Platform, "error", err)
		return nil, err
	}
	return utils.ToPlatform(row), nil
}

// Reparent atomically re-points a platform entry at another job without
// altering its other content.
func (r *platformRepository) Reparent(ctx context.Context, platformID, newJobID uuid.UUID) error {
	err := r.client.ApplicationPlatform.UpdateOneID(platformID).
		SetJobID(newJobID).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to reparent platform", "platform_id", platformID, "new_job_id", newJobID, "error", err)
	}
	return err
}

func (r *platformRepository) Delete(ctx context.Context, platformID uuid.UUID) error {
	err := r.client.ApplicationPlatform.DeleteOneID(platformID).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete platform", "platform_id", platformID, "error", err)
	}
	return err
}

func (r *platformRepository) CountByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	n, err := r.client.ApplicationPlatform.Query().
		Where(applicationplatform.JobID(jobID)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count platforms", "job_id", jobID, "error", err)
		return 0, err
	}
	return n, nil
}
