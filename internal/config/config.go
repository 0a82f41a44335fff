package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server Server
	Quote  Quote
	Upload Upload
	Cache  Cache
	CORS   CORS
	Log    Log
}

// Server holds HTTP server configuration
type Server struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// Quote holds configuration for the external quote source
type Quote struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit int // outbound requests per second
}

// Upload holds limits applied to sheet uploads
type Upload struct {
	MaxBytes         int64
	FetchConcurrency int // concurrent price fetches per upload
}

// Cache holds bounds for the in-memory result cache
type Cache struct {
	MaxEntries int
	TTL        time.Duration
}

// CORS holds CORS-specific configuration
type CORS struct {
	AllowedOrigins []string
}

// Log holds logging configuration
type Log struct {
	Level string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: Server{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Quote: Quote{
			BaseURL:   getEnv("QUOTE_BASE_URL", "https://query1.finance.yahoo.com"),
			Timeout:   getEnvDuration("QUOTE_TIMEOUT", 10*time.Second),
			RateLimit: getEnvInt("QUOTE_RATE_LIMIT", 10),
		},
		Upload: Upload{
			MaxBytes:         getEnvInt64("UPLOAD_MAX_BYTES", 10<<20),
			FetchConcurrency: getEnvInt("FETCH_CONCURRENCY", 8),
		},
		Cache: Cache{
			MaxEntries: getEnvInt("CACHE_MAX_ENTRIES", 32),
			TTL:        getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		CORS: CORS{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Log: Log{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// getEnvInt64 gets an int64 environment variable or returns a default value
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// getEnvDuration gets a duration environment variable ("10s", "5m") or
// returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
