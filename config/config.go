package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	IMDB     IMDBConfig
	API      APIConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Service string
	Port    string
	Env     string
}

type DatabaseConfig struct {
	Path string
}

type IMDBConfig struct {
	APIKey  string
	BaseURL string
}

type APIConfig struct {
	AdminRateLimitPerSec int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables. Service-specific keys
// are prefixed with the upper-cased service name (MAATFOOT_PORT, MAATTUBE_DB_PATH, ...)
// so the three services can share a single .env file.
func Load(service, defaultPort string) (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	_ = godotenv.Load()

	prefix := strings.ToUpper(service)

	adminRate, err := strconv.Atoi(getEnv("RATE_LIMIT_ADMIN_PER_SECOND", "5"))
	if err != nil {
		adminRate = 5
	}

	origins := strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",")

	cfg := &Config{
		Server: ServerConfig{
			Service: service,
			Port:    getEnv(prefix+"_PORT", defaultPort),
			Env:     getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Path: getEnv(prefix+"_DB_PATH", "./"+service+".db"),
		},
		IMDB: IMDBConfig{
			APIKey:  getEnv("IMDB_API_KEY", ""),
			BaseURL: getEnv("IMDB_API_URL", "http://www.omdbapi.com/"),
		},
		API: APIConfig{
			AdminRateLimitPerSec: adminRate,
		},
		CORS: CORSConfig{
			AllowedOrigins: origins,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
