package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/trading_ledger/internal/core/services"
	"github.com/SscSPs/trading_ledger/internal/handlers"
	"github.com/SscSPs/trading_ledger/internal/middleware"
	"github.com/SscSPs/trading_ledger/internal/platform/analytics"
	"github.com/SscSPs/trading_ledger/internal/platform/config"
	"github.com/SscSPs/trading_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/trading_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := slog.Default()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return err
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.MigrateUp(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			return err
		}
	}

	serviceContainer, err := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		return err
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to build rate limiter", slog.String("error", err.Error()))
		return err
	}

	tracker := analytics.NewTracker(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer func() {
		if cerr := tracker.Close(); cerr != nil {
			logger.Warn("Failed to flush analytics", slog.String("error", cerr.Error()))
		}
	}()

	if err := handlers.RegisterValidators(); err != nil {
		return fmt.Errorf("registering validators: %w", err)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter, tracker)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("stock_policy", cfg.StockPolicy))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		return err
	}
	return nil
}
