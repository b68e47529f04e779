package app

import (
	"gorm.io/gorm"

	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
	"github.com/swiftparcel/swiftparcel-backend/internal/repos"
)

type Repos struct {
	Account      repos.AccountRepo
	AccountToken repos.AccountTokenRepo
	Shipment     repos.ShipmentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Account:      repos.NewAccountRepo(db, log),
		AccountToken: repos.NewAccountTokenRepo(db, log),
		Shipment:     repos.NewShipmentRepo(db, log),
	}
}
