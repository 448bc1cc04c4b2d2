package main

import (
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
	"github.com/hoopspot/hoopspot/services/users/gateway"
	"github.com/hoopspot/hoopspot/services/users/handler"
	nsqHandler "github.com/hoopspot/hoopspot/services/users/handler/nsq"
	"github.com/hoopspot/hoopspot/services/users/repository"
	"github.com/hoopspot/hoopspot/services/users/usecase"
)

func main() {
	appName := "users-service"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/users.env"
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

	producer, err := pkgnsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NSQ")
	}
	defer producer.Stop()

	userRepo := repository.NewUserRepository(postgresClient)
	messageRepo := repository.NewMessageRepository(postgresClient)
	networkRepo := repository.NewNetworkRepository(postgresClient)

	courtsClient := pkghttp.NewClient(configs.Services.CourtsServiceURL, 10*time.Second)
	userGW := gateway.NewUserGateway(producer, courtsClient, configs.APIKey.UsersService, appLogger)

	userUC := usecase.NewUserUC(userRepo, messageRepo, networkRepo, userGW, configs.JWT, appLogger)

	checkinConsumer := nsqHandler.NewCheckinConsumer(userUC, appLogger)
	if err := checkinConsumer.Start(configs.NSQ.Address); err != nil {
		appLogger.WithError(err).Fatal("Failed to start checkin consumer")
	}
	defer checkinConsumer.Stop()

	userHandler := handler.NewUserHandler(userUC, configs.JWT, configs.APIKey, appLogger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(appLogger))
	e.Use(middleware.PanicRecovery(appLogger))

	health.RegisterHealthEndpoints(e, appName)
	userHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server exited with error")
	}
}
