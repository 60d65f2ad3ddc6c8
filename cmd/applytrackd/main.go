package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	trackerv1 "github.com/adeolu-ojo/applytrack/gen/proto/tracker/v1"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/contacts"
	"github.com/adeolu-ojo/applytrack/internal/dedup"
	"github.com/adeolu-ojo/applytrack/internal/export"
	"github.com/adeolu-ojo/applytrack/internal/imports"
	"github.com/adeolu-ojo/applytrack/internal/jobs"
	repo "github.com/adeolu-ojo/applytrack/internal/repository"
	svc "github.com/adeolu-ojo/applytrack/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	// Ping DB to ensure connectivity
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// Optional event bus. Publishing is best effort; the tracker works
	// without Redis.
	var events *dedup.Publisher
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		events = dedup.NewPublisher(redis.NewClient(opts), logger)
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(svc.RequestIDInterceptor(logger)))

	jobRepo := repo.NewJobRepository(entc, logger)
	platformRepo := repo.NewPlatformRepository(entc, logger)
	suggestionRepo := repo.NewSuggestionRepository(entc, logger)
	contactRepo := repo.NewContactRepository(entc, logger)
	userRepo := repo.NewUserRepository(entc, logger)

	detector := dedup.NewDetector(jobRepo, suggestionRepo, events, logger)
	merger := dedup.NewMerger(repo.NewTxRunner(entc, logger), events, logger)

	jobService := jobs.NewService(jobRepo, platformRepo, detector, logger)
	importService, err := imports.NewService(jobService, logger)
	if err != nil {
		logger.Error("failed to build import schema", "error", err)
		os.Exit(1)
	}
	exportService := export.NewService(jobRepo, logger)
	contactService := contacts.NewService(contactRepo, logger)

	trackerv1.RegisterJobsServiceServer(grpcServer, svc.NewJobsService(jobService, importService, exportService, logger))
	trackerv1.RegisterDedupServiceServer(grpcServer, svc.NewDedupService(detector, merger, logger))
	trackerv1.RegisterContactsServiceServer(grpcServer, svc.NewContactsService(contactService, logger))
	trackerv1.RegisterUsersServiceServer(grpcServer, svc.NewUsersService(userRepo, logger))

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("applytrackd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
