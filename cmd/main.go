package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/sbilibin2017/podcast-network/docs"
	"github.com/sbilibin2017/podcast-network/internal/config"
	"github.com/sbilibin2017/podcast-network/internal/database"
	"github.com/sbilibin2017/podcast-network/internal/handlers"
	"github.com/sbilibin2017/podcast-network/internal/hasher"
	"github.com/sbilibin2017/podcast-network/internal/jwt"
	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/middlewares"
	"github.com/sbilibin2017/podcast-network/internal/repositories"
	"github.com/sbilibin2017/podcast-network/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	serviceName     = "podcast-network"
	shutdownTimeout = 10 * time.Second
)

// @title podcast-network API
// @version 1.0.0
// @description Multi-tenant backend for managing a podcast network: hosts, shows, episodes and advertisers
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects to the backing stores, serves HTTP and gRPC health, and
// shuts both down on SIGINT, SIGTERM or SIGQUIT.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, serviceName); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.App.LogLevel)

	db, err := database.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Postgres.DSN()); err != nil {
		return err
	}

	rdb, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	var writer services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			Async:                  true,
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		writer = kw
		logger.Log.Infow("publishing events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, domain events are disabled")
	}
	events := services.NewKafkaPublisher(writer)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           newRouter(cfg, db, rdb, events),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.App.Host, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infow("gRPC health server listening", "addr", lis.Addr().String())
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcSrv.Stop()
		return serveErr
	}

	healthSrv.Shutdown()
	grpcSrv.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("servers stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP surface.
// Everything under /api runs in one database transaction per request.
func newRouter(cfg *config.Config, db *sqlx.DB, rdb *redis.Client, events services.EventPublisher) http.Handler {
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	// Initialize JWT and hasher
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Exp),
	)
	passwords := hasher.New(cfg.BcryptCost)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	hostRepo := repositories.NewHostRepository(db, txGetter)
	showRepo := repositories.NewShowRepository(db, txGetter)
	episodeRepo := repositories.NewEpisodeRepository(db, txGetter)
	advertiserRepo := repositories.NewAdvertiserRepository(db, txGetter)
	stateRepo := repositories.NewOAuthStateRepository(rdb)

	// Initialize services
	dataService := services.NewDataService(hostRepo, showRepo, episodeRepo, advertiserRepo, events)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, passwords, tokens, dataService, events)

	providers := make(map[string]services.IdentityProvider)
	if cfg.Google.Enabled() {
		providers[services.ProviderGoogle] = services.NewGoogleProvider(
			cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURI,
		)
	} else {
		logger.Log.Info("Google OAuth credentials not set, federation is disabled")
	}
	oauthService := services.NewOAuthService(providers, stateRepo, userReadRepo, userWriteRepo, tokens, events, cfg.FrontendURL)

	hostService := services.NewHostService(hostRepo, events)
	showService := services.NewShowService(showRepo, hostRepo, events)
	episodeService := services.NewEpisodeService(episodeRepo, showRepo, events)
	advertiserService := services.NewAdvertiserService(advertiserRepo, events)
	uploadService := services.NewUploadService(cfg.UploadDir, cfg.MaxUploadBytes)

	healthHandler := handlers.NewHealthHandler(map[string]handlers.HealthCheck{
		"postgres": db.PingContext,
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	r.Get("/healthz", healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))
		r.Get("/auth/google", handlers.NewGoogleLoginHandler(oauthService))
		r.Get("/auth/google/callback", handlers.NewGoogleCallbackHandler(oauthService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, userReadRepo))

			r.Get("/auth/me", handlers.NewMeHandler())
			r.Delete("/auth/me", handlers.NewDeleteAccountHandler(authService))

			r.Mount("/hosts", handlers.NewHostHandler(hostService).Routes())
			r.Mount("/shows", handlers.NewShowHandler(showService).Routes())
			r.Mount("/episodes", handlers.NewEpisodeHandler(episodeService).Routes())
			r.Mount("/advertisers", handlers.NewAdvertiserHandler(advertiserService).Routes())

			r.Post("/upload/host-image", handlers.NewUploadHostImageHandler(uploadService))
			r.Delete("/clear-all-data", handlers.NewClearAllDataHandler(dataService))
			r.Post("/initialize-defaults", handlers.NewInitializeDefaultsHandler(dataService))
		})
	})

	return r
}
