package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arya020/FormBuilder/internal/cache"
	"github.com/arya020/FormBuilder/internal/config"
	"github.com/arya020/FormBuilder/internal/events"
	"github.com/arya020/FormBuilder/internal/handlers"
	"github.com/arya020/FormBuilder/internal/repositories/postgres"
	"github.com/arya020/FormBuilder/internal/services"
	"github.com/arya020/FormBuilder/internal/storage"
	"github.com/arya020/FormBuilder/internal/utils"
	"github.com/arya020/FormBuilder/internal/validator"
	"github.com/arya020/FormBuilder/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogger := logger.(*utils.SlogLogger).Slog()

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		logger.Warn("Kafka unavailable, falling back to mock publisher", "error", err)
		publisher = events.NewMockEventPublisher(slogger)
	}
	defer publisher.Close()

	blobStore, err := storage.NewDiskStore(cfg.UploadDir, cfg.BaseURL+"/uploads")
	if err != nil {
		logger.Error("Failed to init upload storage", "error", err)
		os.Exit(1)
	}

	formRepo := postgres.NewFormPostgreSQL(db)
	responseRepo := postgres.NewResponsePostgreSQL(db)
	cacheService := cache.NewRedisCache(redisClient, slogger)
	v := validator.New()

	formService := services.NewFormService(formRepo, responseRepo, cacheService, publisher, v, slogger)
	responseService := services.NewResponseService(formService, responseRepo, publisher, v, slogger)
	exportService := services.NewExportService(formService, responseRepo, slogger)
	uploadService := services.NewUploadService(blobStore, slogger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))
	router.Static("/uploads", cfg.UploadDir)

	handlerManager := handlers.NewHandlerManager(formService, responseService, exportService, uploadService, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}
