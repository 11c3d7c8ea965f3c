package router

import (
	"github.com/gin-gonic/gin"
	"github.com/orderdesk/backend/internal/infrastructure/config"
	"github.com/orderdesk/backend/internal/infrastructure/logger"
	"github.com/orderdesk/backend/internal/interfaces/http/handler"
	"github.com/orderdesk/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles the HTTP handlers wired into the router
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Payment   *handler.PaymentHandler
	Export    *handler.ExportHandler
	Health    *handler.HealthHandler
}

// New builds the gin engine with middleware and routes
func New(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))

	engine.GET("/healthz", h.Health.Healthz)

	v1 := engine.Group("/api/v1")
	{
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", h.Dashboard.Summary)
			dashboard.GET("/orders", h.Dashboard.Orders)
			dashboard.GET("/payments", h.Dashboard.Payments)
		}

		v1.POST("/orders/:number/payments", h.Payment.Record)
		v1.DELETE("/payments/:number", h.Payment.Delete)

		export := v1.Group("/export")
		{
			export.GET("/csv", h.Export.CSV)
			export.GET("/table", h.Export.Table)
		}
	}

	return engine
}
