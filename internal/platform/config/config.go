package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "bizbooks"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	MigrationsPath  string
	JWTSecret       string
	JWTIssuer       string
	FrontendBaseURL string

	// Redis is optional; an empty URL disables the ledger list cache.
	RedisURL       string
	LedgerCacheTTL time.Duration

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// SeriesLocation is the time zone used for {YEAR}/{MONTH} when numbering vouchers.
	SeriesLocation *time.Location
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("LEDGER_CACHE_TTL", "5m")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("SERIES_TIMEZONE", "Asia/Kolkata")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	ttlStr := viper.GetString("LEDGER_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
		log.Printf("Warning: Invalid value for LEDGER_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl.String())
	}
	cfg.LedgerCacheTTL = ttl

	tz := viper.GetString("SERIES_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
		log.Printf("Warning: Unknown SERIES_TIMEZONE ('%s'). Defaulting to UTC.\n", tz)
	}
	cfg.SeriesLocation = loc

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
