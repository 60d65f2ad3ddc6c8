package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/dedup"
	repo "github.com/adeolu-ojo/applytrack/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		userStr = flag.String("user", "", "user ID to scan (required)")
		jobStr  = flag.String("job", "", "scan a single job instead of the whole account")
		workers = flag.Int("workers", 4, "concurrent scans when walking the whole account")
	)
	flag.Parse()

	if *userStr == "" {
		printError("Error: --user is required\n")
		os.Exit(1)
	}
	userID, err := uuid.Parse(*userStr)
	if err != nil {
		printError("Error: --user must be a UUID: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	jobRepo := repo.NewJobRepository(entc, logger)
	suggestionRepo := repo.NewSuggestionRepository(entc, logger)
	detector := dedup.NewDetector(jobRepo, suggestionRepo, nil, logger)

	// Single-job mode
	if *jobStr != "" {
		jobID, err := uuid.Parse(*jobStr)
		if err != nil {
			printError("Error: --job must be a UUID: %v\n", err)
			os.Exit(1)
		}
		matches, err := detector.FindPotentialDuplicates(ctx, userID, jobID)
		if err != nil {
			logger.Error("scan failed", "job_id", jobID, "error", err)
			os.Exit(1)
		}
		logger.Info("scan complete", "job_id", jobID, "matches", len(matches))
		for _, m := range matches {
			logger.Info("match",
				"candidate_id", m.Job.ID,
				"company", m.Job.Company,
				"title", m.Job.Title,
				"similarity", fmt.Sprintf("%.3f", m.SimilarityScore))
		}
		return
	}

	// Whole-account mode: rescan every active job. The detector skips
	// pairs that already have a suggestion, so rescans are cheap.
	jobs, err := jobRepo.ListForUser(ctx, userID, nil, nil)
	if err != nil {
		logger.Error("failed to list jobs", "user_id", userID, "error", err)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	total := make([]int, len(jobs))
	for i, j := range jobs {
		if j.IsDuplicate {
			continue
		}
		g.Go(func() error {
			matches, err := detector.FindPotentialDuplicates(gctx, userID, j.ID)
			if err != nil {
				return fmt.Errorf("scan job %s: %w", j.ID, err)
			}
			total[i] = len(matches)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("account scan failed", "error", err)
		os.Exit(1)
	}

	found := 0
	for _, n := range total {
		found += n
	}
	logger.Info("account scan complete", "user_id", userID, "jobs_scanned", len(jobs), "matches", found)

	pending, err := detector.ListPending(ctx, userID)
	if err != nil {
		logger.Error("failed to list pending suggestions", "error", err)
		os.Exit(1)
	}
	logger.Info("pending suggestions", "count", len(pending))
	for _, p := range pending {
		logger.Info("suggestion",
			"id", p.Suggestion.ID,
			"job_1", fmt.Sprintf("%s @ %s", p.Job1.Title, p.Job1.Company),
			"job_2", fmt.Sprintf("%s @ %s", p.Job2.Title, p.Job2.Company),
			"similarity", fmt.Sprintf("%.3f", p.Suggestion.SimilarityScore))
	}
}
