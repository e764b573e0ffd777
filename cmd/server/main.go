package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quemjoga-backend/internal/api/routes"
	"quemjoga-backend/internal/config"
	"quemjoga-backend/internal/database"
	"quemjoga-backend/internal/notify"
	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "quemjoga-backend/docs" // This is needed for swag
)

//go:generate swag init -g cmd/server/main.go -o docs --dir ../../

//	@title			Quem Joga API
//	@version		1.0
//	@description	Backend for amateur football groups: members, matches, attendance, the shared ledger, cards, teams and invites.

//	@contact.name	Quem Joga
//	@contact.email	suporte@quemjoga.app

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	notifier, closeNotifier := setupNotifier(cfg)
	defer closeNotifier()

	router, err := routes.SetupRoutes(db, cfg, notifier)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}

// setupNotifier publishes to NATS when NATS_URL is set and logs notifications otherwise
func setupNotifier(cfg *config.Config) (service.NotifierInterface, func()) {
	if cfg.NATSURL == "" {
		logrus.Info("NATS_URL not set, push notifications will only be logged")
		return notify.NewLogPublisher(), func() {}
	}

	publisher, conn, err := notify.Connect(cfg.NATSURL, cfg.NATSSubject)
	if err != nil {
		logrus.WithError(err).Warn("Failed to connect to NATS, push notifications will only be logged")
		return notify.NewLogPublisher(), func() {}
	}
	return publisher, func() {
		if err := conn.Drain(); err != nil {
			logrus.WithError(err).Warn("Failed to drain NATS connection")
		}
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
