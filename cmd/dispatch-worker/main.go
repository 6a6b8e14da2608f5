package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokengate-backend/internal/app"
	"github.com/goodnatureofminers/tokengate-backend/internal/audit"
	"github.com/goodnatureofminers/tokengate-backend/internal/dispatch"
	"github.com/goodnatureofminers/tokengate-backend/internal/engine"
	"github.com/goodnatureofminers/tokengate-backend/internal/metrics"
	"github.com/goodnatureofminers/tokengate-backend/internal/registry"
	"github.com/goodnatureofminers/tokengate-backend/internal/repository/sqlstore"
)

type config struct {
	DatabaseDSN   string        `long:"database-dsn" env:"DATABASE_DSN" description:"postgres:// dsn or sqlite file path" required:"true"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"audit trail dsn, empty disables the audit trail"`
	FilterRules   string        `long:"filter-rules" env:"FILTER_RULES" description:"yaml file with promotion rules"`
	MetricsAddr   string        `long:"metrics-addr" env:"DISPATCH_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	RegistryTTL   time.Duration `long:"registry-ttl" env:"REGISTRY_TTL" default:"30s"`
	HandlerTTL    time.Duration `long:"handler-timeout" env:"HANDLER_TIMEOUT" default:"60s"`

	Concurrency    int           `long:"concurrency" env:"DISPATCH_CONCURRENCY" default:"4"`
	BatchSize      int           `long:"batch-size" env:"DISPATCH_BATCH_SIZE" default:"32"`
	Lease          time.Duration `long:"lease" env:"DISPATCH_LEASE" default:"2m"`
	IdleSleep      time.Duration `long:"idle-sleep" env:"DISPATCH_IDLE_SLEEP" default:"1s"`
	InitialBackoff time.Duration `long:"initial-backoff" env:"DISPATCH_INITIAL_BACKOFF" default:"5s"`
	MaxBackoff     time.Duration `long:"max-backoff" env:"DISPATCH_MAX_BACKOFF" default:"30m"`
	Jitter         float64       `long:"jitter" env:"DISPATCH_JITTER" description:"randomization factor for retry delays" default:"0.2"`

	PlatformRPS     int               `long:"platform-rps" env:"PLATFORM_RPS" default:"5"`
	NeynarURL       string            `long:"neynar-url" env:"NEYNAR_URL"`
	NeynarAPIKey    string            `long:"neynar-api-key" env:"NEYNAR_API_KEY"`
	NeynarSigners   map[string]string `long:"neynar-signer" env:"NEYNAR_SIGNERS" env-delim:"," description:"fid:signer_uuid"`
	TwitterURL      string            `long:"twitter-url" env:"TWITTER_URL"`
	TwitterAppToken string            `long:"twitter-app-token" env:"TWITTER_APP_TOKEN"`
	TwitterTokens   map[string]string `long:"twitter-token" env:"TWITTER_TOKENS" env-delim:"," description:"account:bearer_token"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("dispatch worker failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	store, err := sqlstore.NewRepository(cfg.DatabaseDSN, metrics.NewSQLRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	reg, err := registry.New(store, cfg.RegistryTTL)
	if err != nil {
		return err
	}
	platforms, err := app.Platforms(app.PlatformConfig{
		RPS:             cfg.PlatformRPS,
		NeynarURL:       cfg.NeynarURL,
		NeynarAPIKey:    cfg.NeynarAPIKey,
		NeynarSigners:   cfg.NeynarSigners,
		TwitterURL:      cfg.TwitterURL,
		TwitterAppToken: cfg.TwitterAppToken,
		TwitterTokens:   cfg.TwitterTokens,
	}, logger)
	if err != nil {
		return fmt.Errorf("init platforms: %w", err)
	}
	handlers, err := app.Handlers(platforms, store, cfg.FilterRules, logger.Named("handler"))
	if err != nil {
		return err
	}

	auditSink, stopAudit, err := app.AuditSink(ctx, cfg.ClickhouseDSN, audit.Config{}, logger)
	if err != nil {
		return err
	}
	defer stopAudit()

	// Jobs carry verified requests, so the worker runs without a verifier
	// and without a queue of its own: the worker settles retries itself.
	executor, err := engine.New(engine.Dependencies{
		Registry:   reg,
		Executions: store,
		Metrics:    metrics.NewActionEngine(),
		Audit:      auditSink,
	}, engine.Config{
		HandlerTimeout: cfg.HandlerTTL,
	}, handlers, logger)
	if err != nil {
		return fmt.Errorf("init engine: %w", err)
	}
	defer executor.Wait()

	worker, err := dispatch.NewWorker(store, executor, metrics.NewDispatchWorker(), dispatch.WorkerConfig{
		Concurrency:    cfg.Concurrency,
		BatchSize:      cfg.BatchSize,
		Lease:          cfg.Lease,
		IdleSleep:      cfg.IdleSleep,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
		Jitter:         cfg.Jitter,
	}, logger)
	if err != nil {
		return fmt.Errorf("init worker: %w", err)
	}
	return worker.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown failed", zap.Error(err))
		}
	}()
}
