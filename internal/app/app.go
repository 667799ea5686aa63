package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"careercode_backend/database"
	"careercode_backend/internal/auth"
	"careercode_backend/internal/config"
	"careercode_backend/internal/events"
	"careercode_backend/internal/handlers"
	"careercode_backend/internal/logger"
	"careercode_backend/internal/middleware"
	"careercode_backend/internal/repositories"
	"careercode_backend/internal/routes"
	"careercode_backend/internal/services"
	"careercode_backend/internal/validator"
	"careercode_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Dependencies - всё, что нужно роутеру.
type Dependencies struct {
	Config       *config.Config
	Repositories *repositories.Repositories
	Tokens       *auth.TokenService
	Verifier     auth.IdentityVerifier
	Publisher    events.Publisher
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	apperrors.DebugErrors = cfg.Server.Env == "development"

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Database unavailable", "driver", cfg.Database.Driver, "error", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			logger.Warn("Failed to close store", "error", err)
		}
	}()

	publisher := openPublisher(ctx, cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", "error", err)
		}
	}()

	deps := &Dependencies{
		Config:       cfg,
		Repositories: repos,
		Tokens:       auth.NewTokenService(cfg.JWT.Secret, cfg.TokenTTL()),
		Verifier:     openVerifier(ctx, cfg),
		Publisher:    publisher,
	}
	ginRouter := SetupRouter(deps)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server startup error", "error", err)
			return
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		return
	}
	logger.Info("Server stopped")
}

func SetupRouter(deps *Dependencies) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(deps.Repositories, deps.Tokens, deps.Verifier, deps.Publisher)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer, deps)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(deps.Config)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeHandlers(services *services.ServiceContainer, deps *Dependencies) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		SystemHandler:      handlers.NewSystemHandler(deps.Repositories),
		AuthHandler:        handlers.NewAuthHandler(baseHandler, services.TokenService, deps.Config.Cookie.Secure),
		JobHandler:         handlers.NewJobHandler(baseHandler, services.JobService, services.TokenService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService, services.IdentityVerifier),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	return router
}

// openStore выбирает хранилище по database.driver.
func openStore(ctx context.Context, cfg *config.Config) (*repositories.Repositories, error) {
	if cfg.Database.Driver == "memory" {
		logger.Warn("Using in-memory store, data is lost on restart")
		return repositories.NewMemoryRepositories(), nil
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := database.Connect(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	logger.Info("Database connected")
	return repositories.NewGormRepositories(db), nil
}

func openPublisher(ctx context.Context, cfg *config.Config) events.Publisher {
	if cfg.Redis.URL == "" {
		logger.Info("REDIS_URL is not set, application events are disabled")
		return events.NopPublisher{}
	}
	publisher, err := events.NewRedisPublisher(ctx, cfg.Redis.URL, cfg.Redis.Channel)
	if err != nil {
		logger.Warn("Redis unavailable, application events are disabled", "error", err)
		return events.NopPublisher{}
	}
	logger.Info("Publishing application events", "channel", cfg.Redis.Channel)
	return publisher
}

func openVerifier(ctx context.Context, cfg *config.Config) auth.IdentityVerifier {
	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase.CredentialsFile, cfg.Firebase.ProjectID)
	if err != nil {
		logger.Warn("Firebase unavailable, bearer tokens will be rejected", "error", err)
		return unavailableVerifier{cause: err}
	}
	return verifier
}
