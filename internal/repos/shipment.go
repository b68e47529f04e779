package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swiftparcel/swiftparcel-backend/internal/domain/shipment"
	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
)

type ShipmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, shp *shipment.Shipment) error
	GetByTrackingCode(ctx context.Context, tx *gorm.DB, code string) (*shipment.Shipment, error)
	TrackingCodeExists(ctx context.Context, tx *gorm.DB, code string) (bool, error)
	// ListByAccount returns the account's shipments newest first.
	ListByAccount(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) ([]*shipment.Shipment, error)
	// SearchByAccount filters the account's shipments to tracking codes
	// containing fragment (already normalized to uppercase).
	SearchByAccount(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, fragment string) ([]*shipment.Shipment, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status shipment.Status) error
}

type shipmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShipmentRepo(db *gorm.DB, baseLog *logger.Logger) ShipmentRepo {
	return &shipmentRepo{db: db, log: baseLog.With("repo", "ShipmentRepo")}
}

func (sr *shipmentRepo) Create(ctx context.Context, tx *gorm.DB, shp *shipment.Shipment) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Create(shp).Error
}

func (sr *shipmentRepo) GetByTrackingCode(ctx context.Context, tx *gorm.DB, code string) (*shipment.Shipment, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var result shipment.Shipment
	err := transaction.WithContext(ctx).Where("tracking_code = ?", code).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *shipmentRepo) TrackingCodeExists(ctx context.Context, tx *gorm.DB, code string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&shipment.Shipment{}).
		Where("tracking_code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sr *shipmentRepo) ListByAccount(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) ([]*shipment.Shipment, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*shipment.Shipment
	if err := transaction.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *shipmentRepo) SearchByAccount(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, fragment string) ([]*shipment.Shipment, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*shipment.Shipment
	if err := transaction.WithContext(ctx).
		Where("account_id = ?", accountID).
		Where("tracking_code LIKE ?", "%"+fragment+"%").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *shipmentRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status shipment.Status) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Model(&shipment.Shipment{}).
		Where("id = ?", id).
		Update("status", status).Error
}
