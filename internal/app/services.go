package app

import (
	"gorm.io/gorm"

	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
	"github.com/swiftparcel/swiftparcel-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Account  services.AccountService
	Shipment services.ShipmentService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth: services.NewAuthService(
			db, log,
			reposet.Account, reposet.AccountToken,
			cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
		),
		Account:  services.NewAccountService(db, log, reposet.Account),
		Shipment: services.NewShipmentService(db, log, reposet.Shipment),
	}
}
