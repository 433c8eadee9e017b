package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scheme-directory/config"
	deliveryHttp "scheme-directory/internal/delivery/http"
	"scheme-directory/internal/delivery/http/handler"
	"scheme-directory/internal/delivery/http/middleware"
	"scheme-directory/internal/infrastructure/cache"
	"scheme-directory/internal/infrastructure/database"
	"scheme-directory/internal/repository"
	"scheme-directory/internal/usecase"
	"scheme-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, database.GormLogLevel(logrus.GetLevel()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	sqlDB, err := db.DB()
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(context.Background(), sqlDB); err != nil {
			app.Close()
			return nil, err
		}
	}

	// Initialize Redis
	var schemeCache usecase.SchemeCache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		schemeCache = cache.NewSchemeCache(redisClient, cfg.Cache.TTL)
		logrus.Info("Redis connected successfully")
	} else {
		logrus.Info("Redis not configured, scheme cache disabled")
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db, sqlDB, schemeCache)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		logrus.Warnf("Unknown log level %q, falling back to info", cfg.LogLevel)
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, sqlDB *sql.DB, schemeCache usecase.SchemeCache) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	schemeRepo := repository.NewSchemeRepository(sqlDB)
	userRepo := repository.NewUserRepository()

	// Initialize usecases
	schemeUsecase := usecase.NewSchemeUsecase(log, schemeRepo, schemeCache)
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo)

	// Initialize handlers
	schemeHandler := handler.NewSchemeHandler(schemeUsecase)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(schemeHandler, authHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database pool and the Redis client when present
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
