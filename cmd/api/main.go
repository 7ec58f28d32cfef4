package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/job-board-service/internal/api/http"
	"github.com/spec-kit/job-board-service/internal/api/http/handlers"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/config"
	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/events"
	"github.com/spec-kit/job-board-service/internal/observability"
	"github.com/spec-kit/job-board-service/internal/persistence"
	"github.com/spec-kit/job-board-service/internal/repository"
	"github.com/spec-kit/job-board-service/internal/service"
	"github.com/spec-kit/job-board-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	store := persistence.NewFileStore(cfg.Store, logger)
	if err := store.Init(repository.EmptyDocument()); err != nil {
		logger.Fatal("failed to init job store file", zap.Error(err))
	}

	credentials, err := auth.NewCredentialStore([]auth.SeedUser{
		{Username: "admin", Password: cfg.Auth.AdminPassword, Role: domain.RoleAdmin},
		{Username: "customer", Password: cfg.Auth.CustomerPassword, Role: domain.RoleCustomer},
		{Username: "staff", Password: cfg.Auth.StaffPassword, Role: domain.RoleStaff},
	}, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to build credential store", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	jobRepo := repository.NewJobRepository(store)
	jobService := service.NewJobService(jobRepo, dispatcher, logger)
	authService := service.NewAuthService(*cfg, credentials)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), credentials)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Auth:           handlers.NewAuthHandler(authService),
		Jobs:           handlers.NewJobsHandler(jobService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
