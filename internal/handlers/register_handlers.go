package handlers

import (
	"github.com/SscSPs/trading_ledger/cmd/docs"
	portssvc "github.com/SscSPs/trading_ledger/internal/core/ports/services"
	"github.com/SscSPs/trading_ledger/internal/middleware"
	"github.com/SscSPs/trading_ledger/internal/platform/analytics"
	"github.com/SscSPs/trading_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	tracker analytics.Tracker,
) {
	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services, rateLimiter, tracker)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	tracker analytics.Tracker,
) {
	v1 := r.Group("/api/v1", middleware.RateLimit(rateLimiter), middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	v1.Use(middleware.AnalyticsMiddleware(tracker))

	RegisterTransactionRoutes(v1, services.Ledger)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
