package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/goodnatureofminers/tokengate-backend/internal/app"
	"github.com/goodnatureofminers/tokengate-backend/internal/audit"
	"github.com/goodnatureofminers/tokengate-backend/internal/credential"
	"github.com/goodnatureofminers/tokengate-backend/internal/dispatch"
	"github.com/goodnatureofminers/tokengate-backend/internal/engine"
	"github.com/goodnatureofminers/tokengate-backend/internal/graph"
	"github.com/goodnatureofminers/tokengate-backend/internal/metrics"
	"github.com/goodnatureofminers/tokengate-backend/internal/registry"
	"github.com/goodnatureofminers/tokengate-backend/internal/repository/sqlstore"
	"github.com/goodnatureofminers/tokengate-backend/internal/reveal"
	"github.com/goodnatureofminers/tokengate-backend/internal/snapshot"
	"github.com/goodnatureofminers/tokengate-backend/internal/transport"
	"github.com/goodnatureofminers/tokengate-backend/internal/verifier"
)

var config struct {
	Addr     string `long:"addr" env:"API_GATEWAY_ADDR" description:"grpc addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`

	DatabaseDSN   string `long:"database-dsn" env:"DATABASE_DSN" description:"postgres:// dsn or sqlite file path" required:"true"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"audit trail dsn, empty disables the audit trail"`
	ActionsFile   string `long:"actions-file" env:"ACTIONS_FILE" description:"yaml file with credentials and actions to import on start"`
	FilterRules   string `long:"filter-rules" env:"FILTER_RULES" description:"yaml file with promotion rules"`

	RegistryTTL time.Duration `long:"registry-ttl" env:"REGISTRY_TTL" default:"30s"`
	SyncBudget  time.Duration `long:"sync-budget" env:"SYNC_BUDGET" default:"10s"`
	HandlerTTL  time.Duration `long:"handler-timeout" env:"HANDLER_TIMEOUT" default:"60s"`
	MaxAttempts int           `long:"max-attempts" env:"DISPATCH_MAX_ATTEMPTS" default:"8"`

	TreeCacheDir    string        `long:"tree-cache-dir" env:"TREE_CACHE_DIR" description:"badger dir for exported trees, empty keeps them in memory"`
	TreeDepth       int           `long:"tree-depth" env:"TREE_DEPTH" default:"12"`
	RootRingSize    int           `long:"root-ring-size" env:"ROOT_RING_SIZE" default:"10"`
	RefreshInterval time.Duration `long:"refresh-interval" env:"TREE_REFRESH_INTERVAL" default:"10m"`

	BalanceIndexURL    string `long:"balance-index-url" env:"BALANCE_INDEX_URL" required:"true"`
	BalanceIndexAPIKey string `long:"balance-index-api-key" env:"BALANCE_INDEX_API_KEY"`
	BalanceIndexRPS    int    `long:"balance-index-rps" env:"BALANCE_INDEX_RPS" default:"5"`

	VerifierURL    string `long:"verifier-url" env:"VERIFIER_URL" required:"true"`
	VerifierAPIKey string `long:"verifier-api-key" env:"VERIFIER_API_KEY"`

	PlatformRPS     int               `long:"platform-rps" env:"PLATFORM_RPS" default:"5"`
	NeynarURL       string            `long:"neynar-url" env:"NEYNAR_URL"`
	NeynarAPIKey    string            `long:"neynar-api-key" env:"NEYNAR_API_KEY"`
	NeynarSigners   map[string]string `long:"neynar-signer" env:"NEYNAR_SIGNERS" env-delim:"," description:"fid:signer_uuid"`
	TwitterURL      string            `long:"twitter-url" env:"TWITTER_URL"`
	TwitterAppToken string            `long:"twitter-app-token" env:"TWITTER_APP_TOKEN"`
	TwitterTokens   map[string]string `long:"twitter-token" env:"TWITTER_TOKENS" env-delim:"," description:"account:bearer_token"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	store, err := sqlstore.NewRepository(config.DatabaseDSN, metrics.NewSQLRepository())
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		_ = store.Close()
	}()

	if config.ActionsFile != "" {
		file, err := registry.LoadFile(config.ActionsFile)
		if err != nil {
			logger.Fatal("Failed to load actions file", zap.Error(err))
		}
		creds, actions, err := registry.Import(ctx, store, file)
		if err != nil {
			logger.Fatal("Failed to import actions", zap.Error(err))
		}
		logger.Info("Imported actions", zap.Int("credentials", creds), zap.Int("actions", actions))
	}

	reg, err := registry.New(store, config.RegistryTTL)
	if err != nil {
		logger.Fatal("Failed to create registry", zap.Error(err))
	}

	treeCache, err := credential.NewBadgerTreeCache(config.TreeCacheDir, logger.Named("tree_cache"))
	if err != nil {
		logger.Fatal("Failed to open tree cache", zap.Error(err))
	}
	defer func() {
		_ = treeCache.Close()
	}()

	balances, err := snapshot.NewClient(snapshot.Config{
		BaseURL: config.BalanceIndexURL,
		APIKey:  config.BalanceIndexAPIKey,
		RPS:     config.BalanceIndexRPS,
	}, metrics.NewHTTPClient("balance_index"), logger)
	if err != nil {
		logger.Fatal("Failed to create balance index client", zap.Error(err))
	}
	builder, err := credential.NewBuilder(balances, store, treeCache, metrics.NewCredentialTree(), config.TreeDepth, config.RootRingSize, logger)
	if err != nil {
		logger.Fatal("Failed to create tree builder", zap.Error(err))
	}
	refresher, err := credential.NewRefresher(store, builder, config.RefreshInterval, logger)
	if err != nil {
		logger.Fatal("Failed to create tree refresher", zap.Error(err))
	}
	go func() {
		if err := refresher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Tree refresher stopped", zap.Error(err))
		}
	}()
	trees, err := credential.NewService(store, treeCache)
	if err != nil {
		logger.Fatal("Failed to create credential service", zap.Error(err))
	}

	proofs, err := verifier.NewRemote(verifier.RemoteConfig{
		BaseURL: config.VerifierURL,
		APIKey:  config.VerifierAPIKey,
	}, metrics.NewHTTPClient("verifier"), logger)
	if err != nil {
		logger.Fatal("Failed to create verifier", zap.Error(err))
	}

	platforms, err := app.Platforms(app.PlatformConfig{
		RPS:             config.PlatformRPS,
		NeynarURL:       config.NeynarURL,
		NeynarAPIKey:    config.NeynarAPIKey,
		NeynarSigners:   config.NeynarSigners,
		TwitterURL:      config.TwitterURL,
		TwitterAppToken: config.TwitterAppToken,
		TwitterTokens:   config.TwitterTokens,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create platform adapters", zap.Error(err))
	}
	handlers, err := app.Handlers(platforms, store, config.FilterRules, logger.Named("handler"))
	if err != nil {
		logger.Fatal("Failed to create action handlers", zap.Error(err))
	}

	queue, err := dispatch.NewQueue(store, logger)
	if err != nil {
		logger.Fatal("Failed to create dispatch queue", zap.Error(err))
	}
	auditSink, stopAudit, err := app.AuditSink(ctx, config.ClickhouseDSN, audit.Config{}, logger)
	if err != nil {
		logger.Fatal("Failed to create audit sink", zap.Error(err))
	}
	defer stopAudit()

	actions, err := engine.New(engine.Dependencies{
		Registry:   reg,
		Verifier:   proofs,
		Roots:      trees,
		Executions: store,
		Metrics:    metrics.NewActionEngine(),
		Queue:      queue,
		Audit:      auditSink,
	}, engine.Config{
		SyncBudget:     config.SyncBudget,
		HandlerTimeout: config.HandlerTTL,
		MaxAttempts:    config.MaxAttempts,
	}, handlers, logger)
	if err != nil {
		logger.Fatal("Failed to create action engine", zap.Error(err))
	}
	defer actions.Wait()

	graphService, err := graph.NewService(store)
	if err != nil {
		logger.Fatal("Failed to create graph service", zap.Error(err))
	}
	revealService, err := reveal.NewService(store, logger)
	if err != nil {
		logger.Fatal("Failed to create reveal service", zap.Error(err))
	}
	handler, err := transport.NewHandler(actions, trees, graphService, revealService, logger)
	if err != nil {
		logger.Fatal("Failed to create http handler", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient(config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Dial gRPC server", zap.Error(err))
	}
	defer func() {
		_ = conn.Close()
	}()

	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))
	if err := handler.Register(gw); err != nil {
		logger.Fatal("Register action routes", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second + config.SyncBudget,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
