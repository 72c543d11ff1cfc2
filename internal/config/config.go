package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SessionStoreFile     = "file"
	SessionStorePostgres = "postgres"

	defaultAPIBaseURL  = "http://localhost:8000/api"
	defaultHTTPTimeout = 15 * time.Second
)

type Config struct {
	AppEnv     string
	APIBaseURL string

	HTTPTimeout     time.Duration
	CatalogCacheTTL time.Duration

	// Requests per second for auth/order writes and for everything else.
	RateLimitStrict  float64
	RateLimitGeneral float64

	SessionStore string
	SessionFile  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:           os.Getenv("APP_ENV"),
		APIBaseURL:       getEnv("API_BASE_URL", defaultAPIBaseURL),
		HTTPTimeout:      getDuration("HTTP_TIMEOUT", defaultHTTPTimeout),
		CatalogCacheTTL:  getDuration("CATALOG_CACHE_TTL", 0),
		RateLimitStrict:  getFloat("RATE_LIMIT_STRICT", 2),
		RateLimitGeneral: getFloat("RATE_LIMIT_GENERAL", 10),
		SessionStore:     getEnv("SESSION_STORE", SessionStoreFile),
		SessionFile:      getEnv("SESSION_FILE", defaultSessionFile()),
		DBHost:           os.Getenv("DB_HOST"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBPort:           getEnv("DB_PORT", "5432"),
	}

	if cfg.SessionStore == SessionStorePostgres && cfg.DBHost == "" {
		log.Fatal("SESSION_STORE=postgres requires DB_HOST")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go durations ("30s") or plain seconds ("30").
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("invalid %s=%q, using %s", key, v, fallback)
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".phonekart", "state.json")
	}
	return filepath.Join(home, ".phonekart", "state.json")
}
