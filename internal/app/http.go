package app

import (
	"github.com/gin-gonic/gin"

	apphttp "github.com/swiftparcel/swiftparcel-backend/internal/http"
	httpH "github.com/swiftparcel/swiftparcel-backend/internal/http/handlers"
	httpMW "github.com/swiftparcel/swiftparcel-backend/internal/http/middleware"
	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	Account  *httpH.AccountHandler
	Shipment *httpH.ShipmentHandler
	Tracking *httpH.TrackingHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Auth:     httpH.NewAuthHandler(serviceset.Auth),
		Account:  httpH.NewAccountHandler(serviceset.Account),
		Shipment: httpH.NewShipmentHandler(serviceset.Shipment),
		Tracking: httpH.NewTrackingHandler(serviceset.Shipment),
	}
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, serviceset.Auth),
	}
}

func wireRouter(log *logger.Logger, handlerset Handlers, middleware Middleware) *gin.Engine {
	return apphttp.NewRouter(apphttp.RouterConfig{
		Log:             log,
		AuthHandler:     handlerset.Auth,
		AuthMiddleware:  middleware.Auth,
		AccountHandler:  handlerset.Account,
		ShipmentHandler: handlerset.Shipment,
		TrackingHandler: handlerset.Tracking,
		HealthHandler:   handlerset.Health,
	})
}
