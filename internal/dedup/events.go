package dedup

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Event channels.
const (
	EventDuplicatesFound     = "EVENT_DUPLICATES_FOUND"
	EventJobsMerged          = "EVENT_JOBS_MERGED"
	EventSuggestionDismissed = "EVENT_SUGGESTION_DISMISSED"
)

// Publisher pushes dedup lifecycle events to Redis pub/sub so other
// surfaces (notifications, SSE) can react. Publishing is best-effort:
// failures are logged, never returned. A nil Publisher is a no-op.
type Publisher struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewPublisher(rdb *redis.Client, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{rdb: rdb, logger: logger}
}

func (p *Publisher) publish(ctx context.Context, channel string, payload map[string]any) {
	if p == nil || p.rdb == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("event payload marshal failed", "channel", channel, "error", err)
		return
	}
	if err := p.rdb.Publish(ctx, channel, body).Err(); err != nil {
		p.logger.Warn("event publish failed", "channel", channel, "error", err)
	}
}

func (p *Publisher) DuplicatesFound(ctx context.Context, userID, jobID uuid.UUID, count int) {
	p.publish(ctx, EventDuplicatesFound, map[string]any{
		"type":   EventDuplicatesFound,
		"userId": userID.String(),
		"jobId":  jobID.String(),
		"count":  count,
	})
}

func (p *Publisher) JobsMerged(ctx context.Context, userID, masterID uuid.UUID, mergedIDs []uuid.UUID) {
	ids := make([]string, len(mergedIDs))
	for i, id := range mergedIDs {
		ids[i] = id.String()
	}
	p.publish(ctx, EventJobsMerged, map[string]any{
		"type":        EventJobsMerged,
		"userId":      userID.String(),
		"masterJobId": masterID.String(),
		"mergedIds":   ids,
	})
}

func (p *Publisher) SuggestionDismissed(ctx context.Context, userID, suggestionID uuid.UUID) {
	p.publish(ctx, EventSuggestionDismissed, map[string]any{
		"type":         EventSuggestionDismissed,
		"userId":       userID.String(),
		"suggestionId": suggestionID.String(),
	})
}
