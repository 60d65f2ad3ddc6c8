package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-ojo/applytrack/constants"
	"github.com/adeolu-ojo/applytrack/gen/ent"
	"github.com/adeolu-ojo/applytrack/gen/ent/duplicatepair"
	"github.com/adeolu-ojo/applytrack/gen/ent/job"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/utils"
)

// InsertSuggestionRequest wraps parameters for persisting a pending
// duplicate-pair suggestion. JobID1/JobID2 must already be in canonical
// order.
type InsertSuggestionRequest struct {
	JobID1          uuid.UUID
	JobID2          uuid.UUID
	CompanyScore    float64
	TitleScore      float64
	LocationScore   float64
	DateScore       float64
	SimilarityScore float64
}

type SuggestionRepository interface {
	GetByPair(ctx context.Context, jobID1, jobID2 uuid.UUID) (*entity.Suggestion, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Suggestion, error)
	InsertPending(ctx context.Context, req *InsertSuggestionRequest) (*entity.Suggestion, error)
	ListPendingForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Suggestion, error)
	// Resolve marks a pending suggestion with the given status. Returns
	// common.ErrConflict when the suggestion is no longer pending.
	Resolve(ctx context.Context, id uuid.UUID, status constants.SuggestionStatus, resolvedAt time.Time) error
	ResolveAllForJob(ctx context.Context, jobID uuid.UUID, status constants.SuggestionStatus, resolvedAt time.Time) error
}

type suggestionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSuggestionRepository(client *ent.Client, logger *slog.Logger) SuggestionRepository {
	return &suggestionRepository{
		client: client,
		logger: logger,
	}
}

func (r *suggestionRepository) GetByPair(ctx context.Context, jobID1, jobID2 uuid.UUID) (*entity.Suggestion, error) {
	row, err := r.client.DuplicatePair.Query().
		Where(
			duplicatepair.JobID1(jobID1),
			duplicatepair.JobID2(jobID2),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get suggestion by pair", "job_id_1", jobID1, "job_id_2", jobID2, "error", err)
		return nil, err
	}
	return utils.ToSuggestion(row), nil
}

func (r *suggestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Suggestion, error) {
	row, err := r.client.DuplicatePair.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get suggestion", "suggestion_id", id, "error", err)
		return nil, err
	}
	return utils.ToSuggestion(row), nil
}

func (r *suggestionRepository) InsertPending(ctx context.Context, req *InsertSuggestionRequest) (*entity.Suggestion, error) {
	row, err := r.client.DuplicatePair.Create().
		SetJobID1(req.JobID1).
		SetJobID2(req.JobID2).
		SetCompanyScore(req.CompanyScore).
		SetTitleScore(req.TitleScore).
		SetLocationScore(req.LocationScore).
		SetDateScore(req.DateScore).
		SetSimilarityScore(req.SimilarityScore).
		SetStatus(string(constants.SuggestionPending)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another detection run inserted the same pair concurrently.
			return nil, common.ErrConflict
		}
		r.logger.Error("failed to insert suggestion", "job_id_1", req.JobID1, "job_id_2", req.JobID2, "error", err)
		return nil, err
	}
	return utils.ToSuggestion(row), nil
}

func (r *suggestionRepository) ListPendingForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Suggestion, error) {
	jobIDs, err := r.client.Job.Query().
		Where(job.UserID(userID)).
		IDs(ctx)
	if err != nil {
		r.logger.Error("failed to list job ids", "user_id", userID, "error", err)
		return nil, err
	}

	rows, err := r.client.DuplicatePair.Query().
		Where(
			duplicatepair.StatusEQ(string(constants.SuggestionPending)),
			duplicatepair.JobID1In(jobIDs...),
		).
		Order(ent.Desc(duplicatepair.FieldSimilarityScore)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list pending suggestions", "user_id", userID, "error", err)
		return nil, err
	}

	out := make([]*entity.Suggestion, len(rows))
	for i, row := range rows {
		out[i] = utils.ToSuggestion(row)
	}
	return out, nil
}

func (r *suggestionRepository) Resolve(ctx context.Context, id uuid.UUID, status constants.SuggestionStatus, resolvedAt time.Time) error {
	// Conditional on pending so concurrent resolutions cannot both win:
	// the loser sees zero updated rows instead of re-stamping resolved_at.
	n, err := r.client.DuplicatePair.Update().
		Where(
			duplicatepair.ID(id),
			duplicatepair.StatusEQ(string(constants.SuggestionPending)),
		).
		SetStatus(string(status)).
		SetResolvedAt(resolvedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to resolve suggestion", "suggestion_id", id, "status", status, "error", err)
		return err
	}
	if n == 0 {
		return common.ErrConflict
	}
	return nil
}

func (r *suggestionRepository) ResolveAllForJob(ctx context.Context, jobID uuid.UUID, status constants.SuggestionStatus, resolvedAt time.Time) error {
	// "Regardless of prior status" is intentional: merging reconciles
	// suggestions recorded from either side of the pair.
	_, err := r.client.DuplicatePair.Update().
		Where(
			duplicatepair.Or(
				duplicatepair.JobID1(jobID),
				duplicatepair.JobID2(jobID),
			),
		).
		SetStatus(string(status)).
		SetResolvedAt(resolvedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to resolve suggestions for job", "job_id", jobID, "status", status, "error", err)
	}
	return err
}
