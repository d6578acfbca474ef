package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	feedbackUsecases "vox/internal/application/feedback/usecases"
	notificationServices "vox/internal/application/notification/services"
	notificationUsecases "vox/internal/application/notification/usecases"
	"vox/internal/domain/feedback/triage"
	"vox/internal/infrastructure/auth"
	"vox/internal/infrastructure/config"
	"vox/internal/infrastructure/database"
	"vox/internal/infrastructure/email"
	"vox/internal/infrastructure/ratelimit"
	"vox/internal/infrastructure/repository"
	"vox/internal/infrastructure/scheduler"
	httpRouter "vox/internal/interfaces/http"
	feedbackHandler "vox/internal/interfaces/http/handlers/feedback"
	notificationHandler "vox/internal/interfaces/http/handlers/notification"
	"vox/internal/interfaces/http/middleware"
	"vox/internal/shared/db"
	"vox/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the feedback platform HTTP server with the configured triage pipeline, notification fan-out and overdue sweep.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := database.Migrate(); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Infrastructure services
	gormDB := database.Get()
	txManager := db.NewTransactionManager(gormDB)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	emailService := email.NewSMTPEmailService(cfg.Email)
	rateLimiter := ratelimit.NewRedisRateLimiter(redisClient)

	// Repositories
	feedbackRepo := repository.NewFeedbackRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Domain services
	notifier := notificationServices.NewNotifier(userRepo, notificationRepo, emailService, log)
	dedup := triage.NewDeduplicator(
		feedbackUsecases.NewCandidateSource(feedbackRepo),
		cfg.Triage.SimilarityThreshold,
		cfg.Triage.SimilarityWindow,
	)
	editWindow := time.Duration(cfg.Triage.EditWindowMinutes) * time.Minute

	// Feedback use cases
	submitUC := feedbackUsecases.NewSubmitFeedbackUseCase(feedbackRepo, dedup, notifier, txManager, log)
	getUC := feedbackUsecases.NewGetFeedbackUseCase(feedbackRepo, log)
	listUC := feedbackUsecases.NewListFeedbackUseCase(feedbackRepo, log)
	editUC := feedbackUsecases.NewEditFeedbackUseCase(feedbackRepo, dedup, txManager, editWindow, log)
	assignUC := feedbackUsecases.NewAssignFeedbackUseCase(feedbackRepo, userRepo, notifier, txManager, log)
	statusUC := feedbackUsecases.NewUpdateStatusUseCase(feedbackRepo, notifier, txManager, log)
	noteUC := feedbackUsecases.NewAddNoteUseCase(feedbackRepo, txManager, log)
	escalateUC := feedbackUsecases.NewEscalateFeedbackUseCase(feedbackRepo, notifier, txManager, log)
	sweepUC := feedbackUsecases.NewOverdueSweepUseCase(feedbackRepo, notifier, txManager, log)

	// Notification use cases
	listNotificationsUC := notificationUsecases.NewListNotificationsUseCase(notificationRepo, log)
	markReadUC := notificationUsecases.NewMarkAsReadUseCase(notificationRepo, log)
	markAllReadUC := notificationUsecases.NewMarkAllAsReadUseCase(notificationRepo, log)
	getPrefsUC := notificationUsecases.NewGetPreferencesUseCase(userRepo, log)
	updatePrefsUC := notificationUsecases.NewUpdatePreferencesUseCase(userRepo, log)

	// HTTP layer
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	fbHandler := feedbackHandler.NewHandler(
		submitUC, getUC, listUC, editUC, assignUC, statusUC, noteUC, escalateUC, sweepUC, log)
	notifHandler := notificationHandler.NewHandler(
		listNotificationsUC, markReadUC, markAllReadUC, getPrefsUC, updatePrefsUC, log)

	router := httpRouter.NewRouter(cfg, authMiddleware, rateLimiter, fbHandler, notifHandler, log)
	router.SetupRoutes()

	// Background overdue sweep
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	overdueScheduler := scheduler.NewOverdueScheduler(
		sweepUC,
		time.Duration(cfg.Triage.SweepIntervalMin)*time.Minute,
		log,
	)
	go overdueScheduler.Start(sweepCtx)
	defer overdueScheduler.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
