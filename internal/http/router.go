package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/swiftparcel/swiftparcel-backend/internal/http/handlers"
	httpMW "github.com/swiftparcel/swiftparcel-backend/internal/http/middleware"
	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler     *httpH.AuthHandler
	AuthMiddleware  *httpMW.AuthMiddleware
	AccountHandler  *httpH.AccountHandler
	ShipmentHandler *httpH.ShipmentHandler
	TrackingHandler *httpH.TrackingHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}

		// Tracking lookup is deliberately public: anyone holding a code can
		// see where the parcel is, nothing more.
		if cfg.TrackingHandler != nil {
			api.GET("/track/:code", cfg.TrackingHandler.Track)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Account (Me)
		if cfg.AccountHandler != nil {
			protected.GET("/me", cfg.AccountHandler.GetMe)
		}

		// Shipments
		if cfg.ShipmentHandler != nil {
			protected.POST("/shipments", cfg.ShipmentHandler.Create)
			protected.GET("/shipments", cfg.ShipmentHandler.ListMine)
			protected.GET("/shipments/search", cfg.ShipmentHandler.Search)
			protected.PATCH("/shipments/:code/status", cfg.ShipmentHandler.UpdateStatus)
		}
	}

	return r
}
