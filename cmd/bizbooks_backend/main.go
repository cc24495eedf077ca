package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/core/services"
	"github.com/SscSPs/bizbooks/internal/handlers"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/internal/repositories/cache"
	"github.com/SscSPs/bizbooks/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizbooks/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title BizBooks Backend API
// @version 1.0
// @description Vouchers, ledgers and voucher numbering series for small-business bookkeeping.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The ledger list cache is optional; without REDIS_URL every list goes to Postgres.
	var ledgerCache portsrepo.LedgerListCache
	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("Redis unavailable, ledger cache disabled", slog.String("error", err.Error()))
	} else if redisClient != nil {
		defer redisClient.Close()
		ledgerCache = cache.NewLedgerCache(redisClient, cfg.LedgerCacheTTL)
		logger.Info("Ledger cache enabled", slog.Duration("ttl", cfg.LedgerCacheTTL))
	}

	repos := pgsql.NewRepositoryProvider(dbPool, ledgerCache)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
