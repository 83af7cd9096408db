package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	_ "github.com/lib/pq" // postgres driver
	"github.com/soheilhy/cmux"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/podcasto/backend/internal/ai"
	"github.com/podcasto/backend/internal/api"
	"github.com/podcasto/backend/internal/audio"
	"github.com/podcasto/backend/internal/config"
	"github.com/podcasto/backend/internal/content"
	"github.com/podcasto/backend/internal/costs"
	"github.com/podcasto/backend/internal/db"
	"github.com/podcasto/backend/internal/email"
	"github.com/podcasto/backend/internal/storage"
	"github.com/podcasto/backend/internal/store"
	stripeinternal "github.com/podcasto/backend/internal/stripe"
	"github.com/podcasto/backend/internal/worker"
)

func main() {
	// ── Logger ────────────────────────────────────────────────────────────────
	// JSON in production, pretty text in development.
	var logger *slog.Logger
	if os.Getenv("ENV") == "production" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// ── Config ────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Info("config loaded", "env", cfg.Env, "port", cfg.Port)

	// ── Database ──────────────────────────────────────────────────────────────
	pool, queries, err := openDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()
	logger.Info("database connected")

	// ── Store (atomic multi-step writes) ──────────────────────────────────────
	st := store.New(pool, queries)

	// ── AWS clients ───────────────────────────────────────────────────────────
	// Credentials come from the default chain: env vars, shared config file,
	// or instance role. Only the region is set explicitly.
	awsCtx, awsCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer awsCancel()
	awsCfg, err := awsconfig.LoadDefaultConfig(awsCtx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return fmt.Errorf("aws config: %w", err)
	}

	bucket := storage.NewS3Client(s3.NewFromConfig(awsCfg), cfg.S3Bucket)
	invoker := audio.NewLambdaInvoker(lambda.NewFromConfig(awsCfg), cfg.AudioLambdaFunction)
	logger.Info("aws clients ready", "region", cfg.AWSRegion, "bucket", cfg.S3Bucket)

	// ── Cost accounting ───────────────────────────────────────────────────────
	recorder := costs.NewRecorder(queries, logger)

	// ── Stripe ────────────────────────────────────────────────────────────────
	stripeClient := stripeinternal.NewClient(cfg.StripeSecretKey)

	// ── AI ────────────────────────────────────────────────────────────────────
	// Gemini is primary. OpenAI is the fallback when OPENAI_API_KEY is also
	// set. In production, set both keys for maximum resilience.
	var generator ai.ScriptGenerator
	switch {
	case cfg.GeminiAPIKey != "" && cfg.OpenAIAPIKey != "":
		primary := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		secondary := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		generator = ai.NewFallbackGenerator(primary, secondary, logger)
		logger.Info("ai: using Gemini with OpenAI fallback")
	case cfg.GeminiAPIKey != "":
		generator = ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		logger.Info("ai: using Gemini only")
	default:
		generator = ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		logger.Info("ai: using OpenAI only")
	}

	// ── Content collectors ────────────────────────────────────────────────────
	collectors := map[db.ContentSource]content.Collector{
		db.ContentSourceTelegram: content.NewTelegramCollector(bucket, logger),
		db.ContentSourceRss:      content.NewRSSCollector(&http.Client{Timeout: 30 * time.Second}, logger),
	}

	// ── Email (SES) ───────────────────────────────────────────────────────────
	sender := email.NewSESSender(
		sesv2.NewFromConfig(awsCfg),
		cfg.EmailFromAddr,
		cfg.EmailFromName,
		cfg.SESTemplateName,
	)
	dispatcher := email.NewDispatcher(
		queries,
		sender,
		recorder,
		logger,
		cfg.BaseURL,
		cfg.EmailBatchSize,
		cfg.EmailSendRate,
		cfg.EmailMaxAttempts,
	)

	// ── Worker ────────────────────────────────────────────────────────────────
	job := worker.NewJob(queries, collectors, generator, bucket, invoker, recorder, logger)
	runner := worker.NewRunner(job, st, queries, worker.RunnerConfig{
		Workers:      cfg.WorkerCount,
		PollInterval: cfg.PollInterval,
		JobTimeout:   cfg.JobTimeout,
		MaxRetries:   cfg.MaxRetries,
	}, logger)

	cron := worker.NewCron(queries, st, bucket, dispatcher, runner, cfg.AudioTimeout, logger)

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.NewServer(
		queries,
		st,
		bucket,
		stripeClient,
		runner, // *Runner satisfies worker.Enqueuer
		cron,
		api.Config{
			BaseURL:             cfg.BaseURL,
			StripeWebhookSecret: cfg.StripeWebhookSecret,
			CronSecret:          cfg.CronSecret,
			CreditPackSize:      int32(cfg.CreditPackSize),
			CreditPackCents:     cfg.CreditPackCents,
			Env:                 cfg.Env,
		},
		logger,
	)

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// ── Listener ──────────────────────────────────────────────────────────────
	// One TCP port serves both protocols: gRPC traffic (the standard health
	// service, used by infra probes) is peeled off by content-type, everything
	// else goes to the HTTP API.
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	mux := cmux.New(lis)
	grpcLis := mux.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpLis := mux.Match(cmux.Any())

	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthSrv)

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	// Root context cancelled by OS signal. Worker and HTTP server both respect it.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the worker pool in a background goroutine. It blocks until ctx is done.
	go runner.Start(ctx)

	serverErr := make(chan error, 1)
	go func() {
		if err := grpcSrv.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			serverErr <- fmt.Errorf("grpc: %w", err)
		}
	}()
	go func() {
		logger.Info("server listening", "addr", lis.Addr().String())
		if err := srv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("http: %w", err)
		}
	}()
	go func() {
		// cmux returns ErrListenerClosed variants on shutdown; both servers
		// report their own errors, so these are not worth surfacing.
		_ = mux.Serve()
	}()

	// Block until either a signal arrives or a server dies unexpectedly.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	// Give in-flight HTTP requests up to 20 seconds to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	grpcSrv.GracefulStop()

	// The worker goroutine exits when ctx is cancelled (already done).
	// runner.Start blocks until all worker goroutines finish.
	logger.Info("shutdown complete")
	return nil
}

// openDB opens the connection pool and prepares all sqlc statements.
// Using db.Prepare (rather than db.New) means every query is validated against
// the database schema at startup — the server refuses to start if the schema
// is out of sync.
func openDB(dsn string) (*sql.DB, *db.Queries, error) {
	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}

	// Tune the connection pool.
	pool.SetMaxOpenConns(25)
	pool.SetMaxIdleConns(10)
	pool.SetConnMaxLifetime(5 * time.Minute)
	pool.SetConnMaxIdleTime(2 * time.Minute)

	// Verify the connection is reachable before proceeding.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping: %w", err)
	}

	// Prepare all sqlc statements. This validates the SQL against the live
	// schema — any mismatch (missing column, renamed table) is caught here,
	// not at the first query execution.
	queries, err := db.Prepare(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("prepare statements: %w", err)
	}

	return pool, queries, nil
}
