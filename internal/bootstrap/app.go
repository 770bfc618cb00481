package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "github.com/SageMyrloc/FinalProject/internal/handler/http"
	gormpersistence "github.com/SageMyrloc/FinalProject/internal/infra/persistence/gorm"
	"github.com/SageMyrloc/FinalProject/internal/infra/setup"
	redisstate "github.com/SageMyrloc/FinalProject/internal/infra/state/redis"
	"github.com/SageMyrloc/FinalProject/internal/service"
)

// App holds the wired application.
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	HttpServer  *http.Server
}

// NewApp loads config, connects to MySQL and Redis, migrates the schema and
// wires every layer.
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	log := NewLogger(cfg)
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(log.GetLevel())
	log.Infof("Logger initialized (level: %s, env: %s)", log.GetLevel(), cfg.AppEnv)

	db, err := setup.InitDB(setup.DBConfig{
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		Name:     cfg.DBName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	if err := setup.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}

	redisClient, err := setup.InitRedis(ctx, setup.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}

	userRepo := gormpersistence.NewGormUserRepository(db)
	catalogRepo := gormpersistence.NewGormCatalogRepository(db)
	activityRepo := gormpersistence.NewGormActivityRepository(db)
	sessionRepo := redisstate.NewRedisSessionRepository(redisClient, cfg.KeyPrefix)
	limiter := redisstate.NewRedisRateLimiter(redisClient, cfg.KeyPrefix)

	authService, err := service.NewAuthService(userRepo, sessionRepo, cfg.SecretKey, cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create AuthService: %w", err)
	}
	catalogService := service.NewCatalogService(catalogRepo)
	activityService := service.NewActivityService(catalogRepo, activityRepo)
	historyService := service.NewHistoryService(activityRepo)

	handlers := Handlers{
		Auth:     httpHandler.NewAuthHandler(authService, cfg.CookieSecure),
		Catalog:  httpHandler.NewCatalogHandler(catalogService),
		Activity: httpHandler.NewActivityHandler(activityService, historyService),
		Pages:    httpHandler.NewPageHandler(authService, catalogService, historyService),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(cfg, log, handlers, authService, limiter)

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		HttpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}, nil
}

// Start serves HTTP in the background.
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown drains in-flight requests, then closes Redis and the SQL pool.
func (a *App) Shutdown(ctx context.Context) {
	a.Log.Info("Shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(shutdownCtx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Log.Errorf("Error closing database connection: %v", err)
			}
		}
	}
	a.Log.Info("Application shutdown complete.")
}
