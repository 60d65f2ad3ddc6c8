// Package dedup finds likely duplicate job applications and consolidates
// them. Detection is read-mostly and safe to run concurrently; merges are
// serialized per user and applied in a single store transaction.
package dedup

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/adeolu-ojo/applytrack/constants"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/match"
	"github.com/adeolu-ojo/applytrack/internal/repository"
)

// scoreWorkers bounds the parallel scoring fan-out. Scoring is pure, so
// candidates can be scored independently.
const scoreWorkers = 4

type Detector struct {
	jobs        repository.JobRepository
	suggestions repository.SuggestionRepository
	events      *Publisher
	logger      *slog.Logger
}

func NewDetector(jobs repository.JobRepository, suggestions repository.SuggestionRepository, events *Publisher, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		jobs:        jobs,
		suggestions: suggestions,
		events:      events,
		logger:      logger,
	}
}

func toFields(j *entity.Job) match.Fields {
	f := match.Fields{
		Company:   j.Company,
		Title:     j.Title,
		AppliedAt: j.AppliedAt,
	}
	if j.City != nil {
		f.City = *j.City
	}
	if j.State != nil {
		f.State = *j.State
	}
	if j.Country != nil {
		f.Country = *j.Country
	}
	return f
}

// CanonicalPair orders two job IDs so that an unordered pair always maps
// to the same (JobID1, JobID2) tuple, keeping at most one suggestion row
// per pair regardless of which side triggered detection.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() <= b.String() {
		return a, b
	}
	return b, a
}

// FindPotentialDuplicates scores the trigger job against the user's
// other non-duplicate jobs, persists new above-threshold suggestions,
// and returns every above-threshold candidate with its scores. The
// returned view is independent of whether a suggestion row already
// existed, so re-running detection is idempotent.
func (d *Detector) FindPotentialDuplicates(ctx context.Context, userID, jobID uuid.UUID) ([]*entity.ScoredJob, error) {
	trigger, err := d.jobs.GetForUser(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	candidates, err := d.jobs.ListActiveExcluding(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []*entity.ScoredJob{}, nil
	}

	triggerFields := toFields(trigger)
	scored := make([]*entity.ScoredJob, len(candidates))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(scoreWorkers)
	for i, cand := range candidates {
		g.Go(func() error {
			r := match.Score(triggerFields, toFields(cand))
			scored[i] = &entity.ScoredJob{
				Job:             cand,
				CompanyScore:    r.Company,
				TitleScore:      r.Title,
				LocationScore:   r.Location,
				DateScore:       r.Date,
				SimilarityScore: r.Composite,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := scored[:0]
	for _, s := range scored {
		if s.SimilarityScore >= match.DuplicateThreshold {
			matches = append(matches, s)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].SimilarityScore != matches[j].SimilarityScore {
			return matches[i].SimilarityScore > matches[j].SimilarityScore
		}
		return matches[i].Job.ID.String() < matches[j].Job.ID.String()
	})

	inserted := 0
	for _, m := range matches {
		id1, id2 := CanonicalPair(trigger.ID, m.Job.ID)
		_, err := d.suggestions.GetByPair(ctx, id1, id2)
		if err == nil {
			// Pair already covered; resolved pairs stay resolved.
			continue
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}

		_, err = d.suggestions.InsertPending(ctx, &repository.InsertSuggestionRequest{
			JobID1:          id1,
			JobID2:          id2,
			CompanyScore:    m.CompanyScore,
			TitleScore:      m.TitleScore,
			LocationScore:   m.LocationScore,
			DateScore:       m.DateScore,
			SimilarityScore: m.SimilarityScore,
		})
		if errors.Is(err, common.ErrConflict) {
			// A concurrent detection run won the insert race; fine.
			continue
		}
		if err != nil {
			return nil, err
		}
		inserted++
	}

	d.logger.Info("duplicate detection finished",
		"user_id", userID,
		"job_id", jobID,
		"candidates", len(candidates),
		"matches", len(matches),
		"new_suggestions", inserted,
	)
	if inserted > 0 {
		d.events.DuplicatesFound(ctx, userID, jobID, inserted)
	}

	return matches, nil
}

// ListPending returns the user's unresolved suggestions joined with both
// referenced jobs, highest similarity first.
func (d *Detector) ListPending(ctx context.Context, userID uuid.UUID) ([]*entity.PendingSuggestion, error) {
	suggestions, err := d.suggestions.ListPendingForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.PendingSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		job1, err := d.jobs.GetForUser(ctx, userID, s.JobID1)
		if err != nil {
			return nil, err
		}
		job2, err := d.jobs.GetForUser(ctx, userID, s.JobID2)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.PendingSuggestion{
			Suggestion: s,
			Job1:       job1,
			Job2:       job2,
		})
	}
	return out, nil
}

// Dismiss marks a pending suggestion as dismissed. Dismissing a
// suggestion that is already resolved fails with ErrConflict so callers
// see double submissions instead of silently swallowing them.
func (d *Detector) Dismiss(ctx context.Context, userID, suggestionID uuid.UUID) error {
	s, err := d.suggestions.GetByID(ctx, suggestionID)
	if err != nil {
		return err
	}

	// Ownership is transitive through the referenced job.
	if _, err := d.jobs.GetForUser(ctx, userID, s.JobID1); err != nil {
		return err
	}

	if s.Status != string(constants.SuggestionPending) {
		return common.ErrConflict
	}

	// Resolve only updates pending rows, so a concurrent resolution that
	// slips in after the status check above still surfaces as ErrConflict.
	if err := d.suggestions.Resolve(ctx, s.ID, constants.SuggestionDismissed, time.Now().UTC()); err != nil {
		return err
	}
	d.logger.Info("suggestion dismissed", "user_id", userID, "suggestion_id", suggestionID)
	d.events.SuggestionDismissed(ctx, userID, suggestionID)
	return nil
}
