package dedup

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestPublisher_NilIsNoOp(t *testing.T) {
	var p *Publisher
	ctx := context.Background()

	// None of these may panic or touch the network.
	p.DuplicatesFound(ctx, uuid.New(), uuid.New(), 3)
	p.JobsMerged(ctx, uuid.New(), uuid.New(), []uuid.UUID{uuid.New()})
	p.SuggestionDismissed(ctx, uuid.New(), uuid.New())
}

func TestPublish_MarshalFailureIsLoggedAndSkipped(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	// The client is never dialed: publish bails out before the Redis
	// command when the payload cannot be encoded.
	p := NewPublisher(redis.NewClient(&redis.Options{Addr: "localhost:0"}), logger)

	p.publish(context.Background(), EventJobsMerged, map[string]any{
		"bad": make(chan int),
	})

	assert.Contains(t, buf.String(), "event payload marshal failed")
	assert.Contains(t, buf.String(), EventJobsMerged)
}
