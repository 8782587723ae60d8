package config

import (
	"os"
	"strconv"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
}

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
}

// Default configuration values
const (
	DefaultServerPort      = "8000"
	DefaultServerHost      = ""
	DefaultMongoURI        = "mongodb://localhost:27017"
	DefaultMongoDB         = "pm_assistant_db"
	DefaultJWTSecret       = "dev-secret-change-in-production"
	DefaultTokenTTLMinutes = 60 * 24

	// Pagination default for list endpoints
	DefaultListLimit = 100
)

// New returns a new Config with values from the environment, falling back to
// defaults.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("DATABASE_NAME", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", DefaultJWTSecret),
			TokenTTLMinutes: getEnvInt("TOKEN_TTL_MINUTES", DefaultTokenTTLMinutes),
		},
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
