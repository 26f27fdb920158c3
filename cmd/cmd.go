package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wemoment-backend/internal/backend"
	"wemoment-backend/internal/config"
	"wemoment-backend/internal/database"
	"wemoment-backend/internal/handlers"
	"wemoment-backend/internal/repository"
	"wemoment-backend/internal/services"
	"wemoment-backend/internal/state"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	configPath := os.Getenv("WEMOMENT_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	ctx := context.Background()

	// Persistence adapter
	persist, db, err := newSnapshotRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize state storage")
	}
	if db != nil {
		defer db.Close()
	}

	// State store
	store := state.NewStore(persist, state.WithDemoSeed(cfg.Storage.SeedDemoData()))
	store.Bootstrap(ctx)

	// Initialize services
	backendClient := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	authService := services.NewAuthService(store, backendClient, cfg.JWT.Secret, cfg.JWT.TTLDays)
	inviteService := services.NewInviteService(store, backendClient)
	profileService := services.NewProfileService(store)
	travelService := services.NewTravelService(store)

	var photoStorage services.ObjectStorage
	if cfg.AWS.S3Bucket != "" {
		s3Storage, err := services.NewS3Storage(ctx, services.S3Options{
			Region:    cfg.AWS.Region,
			Bucket:    cfg.AWS.S3Bucket,
			AccessKey: cfg.AWS.AccessKey,
			SecretKey: cfg.AWS.SecretKey,
			Endpoint:  cfg.AWS.Endpoint,
			PublicURL: cfg.AWS.PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create photo storage")
		}
		photoStorage = s3Storage
	} else {
		log.Warn().Msg("aws.s3_bucket not set, photo uploads disabled")
	}
	photoService := services.NewPhotoService(store, photoStorage)

	wsHub := services.NewWSHub(store)
	defer wsHub.Attach()()

	if cfg.Push.Enabled {
		pusher, err := services.NewAPNsPusher(cfg.Push.CertificatePath, cfg.Push.CertificatePass, cfg.Push.Topic, cfg.Push.Production)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create push client")
		}
		defer services.NewNotificationPusher(pusher).Attach(store)()
	}

	// Setup router
	router := handlers.NewRouter(handlers.Dependencies{
		Store:          store,
		AuthService:    authService,
		InviteService:  inviteService,
		ProfileService: profileService,
		PhotoService:   photoService,
		TravelService:  travelService,
		Hub:            wsHub,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Str("storage", cfg.Storage.Driver).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// newSnapshotRepository builds the persistence adapter selected in config
func newSnapshotRepository(ctx context.Context, cfg *config.Config) (state.Persistence, *pgxpool.Pool, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return repository.NewMemorySnapshotRepository(), nil, nil
	case config.StoragePostgres:
		db, err := database.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresSnapshotRepository(db, cfg.Storage.Key), db, nil
	default:
		return repository.NewFileSnapshotRepository(cfg.Storage.Dir, cfg.Storage.Key), nil, nil
	}
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
