package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hoopspot/hoopspot/internal/pkg/config"
	"github.com/hoopspot/hoopspot/internal/pkg/database"
	"github.com/hoopspot/hoopspot/internal/pkg/health"
	pkghttp "github.com/hoopspot/hoopspot/internal/pkg/http"
	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/middleware"
	pkgnsq "github.com/hoopspot/hoopspot/internal/pkg/nsq"
	"github.com/hoopspot/hoopspot/internal/pkg/server"
	"github.com/hoopspot/hoopspot/services/courts/gateway"
	"github.com/hoopspot/hoopspot/services/courts/handler"
	nsqHandler "github.com/hoopspot/hoopspot/services/courts/handler/nsq"
	"github.com/hoopspot/hoopspot/services/courts/repository"
	"github.com/hoopspot/hoopspot/services/courts/usecase"
)

func main() {
	appName := "courts-service"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/courts.env"
	}
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithField("app", appName).Info("Starting application")

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	producer, err := pkgnsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NSQ")
	}
	defer producer.Stop()

	courtRepo := repository.NewCourtRepository(postgresClient)
	occupancyRepo := repository.NewOccupancyRepository(redisClient)

	usersClient := pkghttp.NewClient(configs.Services.UsersServiceURL, 10*time.Second)
	courtGW := gateway.NewCourtGateway(producer, usersClient, configs.APIKey.CourtsService, appLogger)

	courtUC := usecase.NewCourtUC(courtRepo, occupancyRepo, courtGW, appLogger)

	// Rebuild the Redis geo index from the catalog so nearby queries
	// survive a Redis restart.
	if err := courtUC.SyncGeoIndex(context.Background()); err != nil {
		appLogger.WithError(err).Warn("Failed to sync court geo index")
	}

	privacyConsumer := nsqHandler.NewPrivacyConsumer(courtUC, appLogger)
	if err := privacyConsumer.Start(configs.NSQ.Address); err != nil {
		appLogger.WithError(err).Fatal("Failed to start privacy consumer")
	}
	defer privacyConsumer.Stop()

	courtHandler := handler.NewCourtHandler(courtUC, configs.JWT, configs.APIKey, appLogger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(appLogger))
	e.Use(middleware.PanicRecovery(appLogger))

	health.RegisterHealthEndpoints(e, appName)
	courtHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server exited with error")
	}
}
