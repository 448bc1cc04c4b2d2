package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// InitConfig loads configuration from an env-style file (when present) with
// environment variables taking precedence, and returns the populated config.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config file %s not loaded: %v (falling back to environment)", configPath, err)
	}

	setDefaults(v)

	return &models.Config{
		App: models.AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			Debug:       v.GetBool("APP_DEBUG"),
			Version:     v.GetString("APP_VERSION"),
		},
		Server: models.ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ReadTimeout:     v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetInt("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetInt("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Database: models.DatabaseConfig{
			Host:      v.GetString("DB_HOST"),
			Port:      v.GetInt("DB_PORT"),
			Username:  v.GetString("DB_USERNAME"),
			Password:  v.GetString("DB_PASSWORD"),
			Database:  v.GetString("DB_DATABASE"),
			SSLMode:   v.GetString("DB_SSL_MODE"),
			MaxConns:  v.GetInt("DB_MAX_CONNS"),
			IdleConns: v.GetInt("DB_IDLE_CONNS"),
		},
		Redis: models.RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			PoolSize: v.GetInt("REDIS_POOL_SIZE"),
		},
		NSQ: models.NSQConfig{
			Address:         v.GetString("NSQ_ADDRESS"),
			LookupAddresses: v.GetStringSlice("NSQ_LOOKUP_ADDRESSES"),
		},
		JWT: models.JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		APIKey: models.APIKeyConfig{
			CourtsService: v.GetString("COURTS_SERVICE_API_KEY"),
			UsersService:  v.GetString("USERS_SERVICE_API_KEY"),
			AgentService:  v.GetString("AGENT_SERVICE_API_KEY"),
		},
		Services: models.ServicesConfig{
			CourtsServiceURL: v.GetString("COURTS_SERVICE_URL"),
			UsersServiceURL:  v.GetString("USERS_SERVICE_URL"),
		},
		Geofence: models.GeofenceConfig{
			StatePath:               v.GetString("GEOFENCE_STATE_PATH"),
			SessionTokenPath:        v.GetString("GEOFENCE_SESSION_TOKEN_PATH"),
			EvaluationInterval:      v.GetDuration("GEOFENCE_EVALUATION_INTERVAL"),
			MinSampleDistanceMeters: v.GetFloat64("GEOFENCE_MIN_SAMPLE_DISTANCE_METERS"),
			MinSampleInterval:       v.GetDuration("GEOFENCE_MIN_SAMPLE_INTERVAL"),
			ForegroundGranted:       v.GetBool("GEOFENCE_FOREGROUND_GRANTED"),
			BackgroundGranted:       v.GetBool("GEOFENCE_BACKGROUND_GRANTED"),
			LocationTopic:           v.GetString("GEOFENCE_LOCATION_TOPIC"),
			LocationChannel:         v.GetString("GEOFENCE_LOCATION_CHANNEL"),
		},
		Logger: models.LoggerConfig{
			Level:    v.GetString("LOG_LEVEL"),
			FilePath: v.GetString("LOG_FILE_PATH"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("JWT_EXPIRATION", 60*24*30) // 30 days, matching mobile session length
	v.SetDefault("JWT_ISSUER", "hoopspot")
	v.SetDefault("COURTS_SERVICE_URL", "http://localhost:9981")
	v.SetDefault("USERS_SERVICE_URL", "http://localhost:9982")
	v.SetDefault("GEOFENCE_STATE_PATH", "data/geofence_state.json")
	v.SetDefault("GEOFENCE_EVALUATION_INTERVAL", 30*time.Second)
	v.SetDefault("GEOFENCE_MIN_SAMPLE_DISTANCE_METERS", 25.0)
	v.SetDefault("GEOFENCE_MIN_SAMPLE_INTERVAL", 30*time.Second)
	v.SetDefault("GEOFENCE_LOCATION_TOPIC", "device.location")
	v.SetDefault("GEOFENCE_LOCATION_CHANNEL", "geofence-agent")
	v.SetDefault("LOG_LEVEL", "info")
}
