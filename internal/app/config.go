package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer        string        // Optional: issuer claim for session tokens (default: rugby-league-central)
	SessionSecret string        // Required: HMAC secret for session tokens
	SessionTTL    time.Duration // Optional: session lifetime (default: 168h)

	DatabaseFile string // Optional: path to SQLite database file (default: ./rlc.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	RedisAddr     string // Optional: Redis address for the feed cache; empty selects the in-memory cache
	RedisPassword string // Optional: Redis password
	RedisDB       int    // Optional: Redis database number (default: 0)

	SportsAPIBaseURL string // Optional: sports data provider base URL
	SportsAPIKey     string // Optional: sports data provider API key (default: the free tier key "3")
	NewsBaseURL      string // Optional: news aggregator base URL

	BillingSecret string // Optional: shared secret for the billing webhook; empty disables the webhook

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	// A local .env is a dev convenience; in production everything comes
	// from real environment variables.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:        getEnvOrDefault("RLC_ISSUER", "rugby-league-central"),
		SessionSecret: os.Getenv("RLC_SESSION_SECRET"),
		SessionTTL:    getEnvDurationOrDefault("RLC_SESSION_TTL", 7*24*time.Hour),

		DatabaseFile: getEnvOrDefault("RLC_DATABASE_FILE", "rlc.db"),
		PepperFile:   getEnvOrDefault("RLC_PEPPER_FILE", "pepper"),

		RedisAddr:     os.Getenv("RLC_REDIS_ADDR"),
		RedisPassword: os.Getenv("RLC_REDIS_PASSWORD"),
		RedisDB:       getEnvIntOrDefault("RLC_REDIS_DB", 0),

		SportsAPIBaseURL: getEnvOrDefault("RLC_SPORTS_API_URL", "https://www.thesportsdb.com"),
		SportsAPIKey:     getEnvOrDefault("RLC_SPORTS_API_KEY", "3"),
		NewsBaseURL:      getEnvOrDefault("RLC_NEWS_URL", "https://news.google.com"),

		BillingSecret: os.Getenv("RLC_BILLING_SECRET"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
