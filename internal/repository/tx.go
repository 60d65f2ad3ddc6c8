package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adeolu-ojo/applytrack/gen/ent"
)

// Repos bundles the repositories a transactional unit of work operates on.
type Repos struct {
	Jobs        JobRepository
	Platforms   PlatformRepository
	Suggestions SuggestionRepository
}

// TxRunner executes a function against a single store transaction. If fn
// returns an error the transaction is rolled back and no changes are
// applied.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(Repos) error) error
}

type entTxRunner struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTxRunner(client *ent.Client, logger *slog.Logger) TxRunner {
	return &entTxRunner{
		client: client,
		logger: logger,
	}
}

func (r *entTxRunner) RunInTx(ctx context.Context, fn func(Repos) error) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	repos := Repos{
		Jobs:        NewJobRepository(tx.Client(), r.logger),
		Platforms:   NewPlatformRepository(tx.Client(), r.logger),
		Suggestions: NewSuggestionRepository(tx.Client(), r.logger),
	}

	if err := fn(repos); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "error", rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
