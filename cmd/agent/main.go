package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hoopspot/hoopspot/internal/pkg/config"
	"github.com/hoopspot/hoopspot/internal/pkg/health"
	pkghttp "github.com/hoopspot/hoopspot/internal/pkg/http"
	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/middleware"
	"github.com/hoopspot/hoopspot/internal/pkg/server"
	gatewayhttp "github.com/hoopspot/hoopspot/services/geofence/gateway/http"
	gatewaynsq "github.com/hoopspot/hoopspot/services/geofence/gateway/nsq"
	"github.com/hoopspot/hoopspot/services/geofence/handler"
	"github.com/hoopspot/hoopspot/services/geofence/repository"
	"github.com/hoopspot/hoopspot/services/geofence/usecase"
)

func main() {
	appName := "geofence-agent"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/agent.env"
	}
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithField("app", appName).Info("Starting application")

	stateRepo := repository.NewFileStateRepo(configs.Geofence.StatePath)
	session := gatewayhttp.NewFileSessionProvider(configs.Geofence.SessionTokenPath)

	courtsHTTP := pkghttp.NewClient(configs.Services.CourtsServiceURL, 10*time.Second)
	courtsClient := gatewayhttp.NewCourtsClient(courtsHTTP, session, appLogger)

	source := gatewaynsq.NewLocationSource(configs.Geofence, configs.NSQ.Address, appLogger)

	monitor := usecase.NewMonitor(
		stateRepo,
		courtsClient,
		courtsClient,
		source,
		configs.Geofence,
		appLogger,
	)

	// The agent resumes monitoring on boot; the control surface can stop
	// and restart it at runtime.
	started, err := monitor.Start(context.Background())
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to start geofence monitor")
	}
	if !started {
		appLogger.Warn("Location permission not granted, monitor idle until started via API")
	}
	defer monitor.Stop()

	geofenceHandler := handler.NewGeofenceHandler(monitor, appLogger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(appLogger))
	e.Use(middleware.PanicRecovery(appLogger))

	health.RegisterHealthEndpoints(e, appName)
	geofenceHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server exited with error")
	}
}
