package dedup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-ojo/applytrack/constants"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/repository"
)

// Merger consolidates duplicate jobs into a master job. The whole merge
// runs in one store transaction: on any failure the transaction rolls
// back and the caller gets ErrMergeFailed, meaning no changes were
// applied and the same request can be retried.
type Merger struct {
	tx     repository.TxRunner
	events *Publisher
	logger *slog.Logger
	locks  userLocks
	now    func() time.Time
}

func NewMerger(tx repository.TxRunner, events *Publisher, logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{
		tx:     tx,
		events: events,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// userLocks serializes merges per user. Two concurrent merges over
// overlapping job sets would race on platform re-parenting and on the
// master's platform_count.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (l *userLocks) forUser(userID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[uuid.UUID]*sync.Mutex)
	}
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

// Merge folds duplicateIDs into masterID for the given user.
func (m *Merger) Merge(ctx context.Context, userID, masterID uuid.UUID, duplicateIDs []uuid.UUID) (*entity.MergeSummary, error) {
	if len(duplicateIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one duplicate job id is required", common.ErrValidation)
	}
	seen := make(map[uuid.UUID]struct{}, len(duplicateIDs))
	for _, id := range duplicateIDs {
		if id == masterID {
			return nil, fmt.Errorf("%w: master job cannot be merged into itself", common.ErrValidation)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate job id %s listed twice", common.ErrValidation, id)
		}
		seen[id] = struct{}{}
	}

	lock := m.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	mergedAt := m.now()
	var summary *entity.MergeSummary

	err := m.tx.RunInTx(ctx, func(repos repository.Repos) error {
		master, err := repos.Jobs.GetForUser(ctx, userID, masterID)
		if err != nil {
			return err
		}
		if master.IsDuplicate {
			return fmt.Errorf("%w: master job %s is itself merged into another job", common.ErrValidation, masterID)
		}

		dups, err := repos.Jobs.GetManyForUser(ctx, userID, duplicateIDs)
		if err != nil {
			return err
		}
		if len(dups) != len(duplicateIDs) {
			return fmt.Errorf("%w: requested %d duplicate jobs, found %d",
				common.ErrValidation, len(duplicateIDs), len(dups))
		}
		byID := make(map[uuid.UUID]*entity.Job, len(dups))
		for _, d := range dups {
			byID[d.ID] = d
		}

		// Process duplicates in the order given by the caller.
		for _, dupID := range duplicateIDs {
			dup := byID[dupID]

			platforms, err := repos.Platforms.ListByJob(ctx, dup.ID)
			if err != nil {
				return err
			}
			for _, p := range platforms {
				exists, err := repos.Platforms.ExistsForJob(ctx, masterID, p.Platform)
				if err != nil {
					return err
				}
				if exists {
					// Master already applied through this platform: its
					// entry wins, the duplicate's is dropped.
					if err := repos.Platforms.Delete(ctx, p.ID); err != nil {
						return err
					}
				} else if err := repos.Platforms.Reparent(ctx, p.ID, masterID); err != nil {
					return err
				}
			}

			if err := repos.Jobs.MarkMerged(ctx, dup.ID, masterID); err != nil {
				return err
			}
			if err := repos.Suggestions.ResolveAllForJob(ctx, dup.ID, constants.SuggestionMerged, mergedAt); err != nil {
				return err
			}
		}

		// Recompute rather than increment: the cached count must equal
		// the true post-merge row count.
		count, err := repos.Platforms.CountByJob(ctx, masterID)
		if err != nil {
			return err
		}
		if err := repos.Jobs.SetPlatformCount(ctx, masterID, count); err != nil {
			return err
		}

		summary = &entity.MergeSummary{
			MasterJobID:   masterID,
			MergedJobIDs:  duplicateIDs,
			PlatformCount: count,
			MergedAt:      mergedAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrValidation) {
			return nil, err
		}
		m.logger.Error("merge rolled back", "user_id", userID, "master_job_id", masterID, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrMergeFailed, err)
	}

	m.logger.Info("jobs merged",
		"user_id", userID,
		"master_job_id", masterID,
		"merged", len(duplicateIDs),
		"platform_count", summary.PlatformCount,
	)
	m.events.JobsMerged(ctx, userID, masterID, duplicateIDs)
	return summary, nil
}
