// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/grocer/internal/ai"
	"github.com/javajoker/grocer/internal/config"
	"github.com/javajoker/grocer/internal/events"
	"github.com/javajoker/grocer/internal/i18n"
	"github.com/javajoker/grocer/internal/router"
	"github.com/javajoker/grocer/internal/seed"
	"github.com/javajoker/grocer/internal/services"
	"github.com/javajoker/grocer/internal/telemetry"
)

type publisher interface {
	services.EventPublisher
	Close() error
}

func main() {
	logger := logrus.New()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	configureLogger(logger, cfg)

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logger.WithError(err).Fatal("Failed to initialize i18n")
	}

	// Initialize tracing
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg.Telemetry, os.Stdout)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize tracing")
	}

	// Load catalog
	products, err := seed.Load(cfg.Catalog.SeedPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load catalog")
	}

	generator, err := ai.New(cfg.Recipe, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize recipe generator")
	}
	if generator == nil {
		logger.Warn("Recipe generation is disabled")
	}

	eventPublisher, err := newPublisher(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize event publisher")
	}

	app := services.NewStorefront(services.StorefrontOptions{
		Seed:      products,
		Generator: generator,
		Publisher: eventPublisher,
		Logger:    logger,
	})

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(app, cfg, logger)
	defer r.Stop()

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      telemetry.HTTPHandler(r, "grocer"),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.WithFields(logrus.Fields{
			"port":     cfg.Server.Port,
			"products": len(products),
			"provider": cfg.Recipe.Provider,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	if err := eventPublisher.Close(); err != nil {
		logger.WithError(err).Error("Failed to close event publisher")
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.WithError(err).Error("Failed to flush traces")
	}

	logger.Info("Server exited")
}

func configureLogger(logger *logrus.Logger, cfg *config.Config) {
	if cfg.IsProduction() || cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.WithField("level", cfg.Log.Level).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

func newPublisher(cfg *config.Config, logger *logrus.Logger) (publisher, error) {
	if !cfg.Events.Enabled() {
		return events.NewLogPublisher(logger), nil
	}
	kafka, err := events.NewKafkaPublisher(cfg.Events.BrokerList(), cfg.Events.Topic, cfg.Events.ClientID, logger)
	if err != nil {
		return nil, err
	}
	return kafka, nil
}
