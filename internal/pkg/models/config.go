package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Services ServicesConfig
	Geofence GeofenceConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address         string
	LookupAddresses []string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig contains service-to-service API keys
type APIKeyConfig struct {
	CourtsService string
	UsersService  string
	AgentService  string
}

// ServicesConfig contains URLs for other services
type ServicesConfig struct {
	CourtsServiceURL string
	UsersServiceURL  string
}

// GeofenceConfig contains auto check-in agent configuration
type GeofenceConfig struct {
	// StatePath is where the persisted GeofenceState record lives.
	StatePath string
	// SessionTokenPath points at the stored session credential; empty
	// means no credential and gateway calls are skipped.
	SessionTokenPath string
	// EvaluationInterval is the minimum wall-clock gap between
	// evaluation cycles, measured from the persisted state.
	EvaluationInterval time.Duration
	// MinSampleDistanceMeters / MinSampleInterval are the platform
	// sampling hints applied by the location source.
	MinSampleDistanceMeters float64
	MinSampleInterval       time.Duration
	// Reported permission grants from the paired device.
	ForegroundGranted bool
	BackgroundGranted bool
	LocationTopic     string
	LocationChannel   string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
