package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"workwise_backend/internal/config"
	"workwise_backend/internal/database"
	"workwise_backend/internal/email"
	"workwise_backend/internal/handlers"
	"workwise_backend/internal/logger"
	"workwise_backend/internal/middleware"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/routes"
	"workwise_backend/internal/services"
	"workwise_backend/internal/storage"
	"workwise_backend/internal/workers"
)

// Run boots the whole application and blocks serving HTTP.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err, "path", cfg.Database.Path)
	}
	logger.Info("database connected", "path", cfg.Database.Path)

	if err := database.SeedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("failed to seed first admin user", "error", err)
	}

	router := SetupRouter(cfg, db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	workers.NewResetCodeWorker(repositories.NewResetCodeRepository(db)).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter wires storage, email, services and handlers onto a gin
// engine. Split out of Run so tests can build a router against their own
// database.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	logger.Info("storage initialized", "type", cfg.Storage.Type)

	emailProvider := newEmailProvider(cfg)

	serviceContainer := services.NewServiceContainer(db, store, emailProvider, cfg)
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	router := newGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers)
	return router
}

func newEmailProvider(cfg *config.Config) email.Provider {
	provider, err := email.NewSMTPProvider(cfg)
	if err != nil {
		logger.Warn("smtp not configured, reset code emails will be logged only", "reason", err)
		return email.NewNoopProvider()
	}
	return provider
}

func newGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
