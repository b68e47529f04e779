package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swiftparcel/swiftparcel-backend/internal/domain/shipment"
	pkgerrors "github.com/swiftparcel/swiftparcel-backend/internal/pkg/errors"
	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
	"github.com/swiftparcel/swiftparcel-backend/internal/repos"
	"github.com/swiftparcel/swiftparcel-backend/internal/requestdata"
)

// trackingCodeAttempts bounds regeneration when a freshly drawn code hits the
// unique index. 32 random bits collide rarely at realistic volumes, so more
// than a handful of retries means something is wrong with the store.
const trackingCodeAttempts = 5

type CreateShipmentParams struct {
	SenderName     string
	ReceiverName   string
	ReceiverMobile string
	Origin         string
	Destination    string
	Pickup         shipment.Address
	Delivery       shipment.Address
	WeightKg       float64
}

type ShipmentService interface {
	// Create registers a shipment for the authenticated account and assigns
	// a unique tracking code.
	Create(ctx context.Context, params CreateShipmentParams) (*shipment.Shipment, error)
	// ListMine returns the caller's shipments, newest first.
	ListMine(ctx context.Context) ([]*shipment.Shipment, error)
	// Search filters the caller's shipments by tracking-code fragment,
	// case-insensitive. An empty fragment returns everything the caller owns.
	Search(ctx context.Context, fragment string) ([]*shipment.Shipment, error)
	// Track is the public exact-match lookup. A miss returns ErrNotFound,
	// which callers present as "no shipment found", not as a failure.
	Track(ctx context.Context, code string) (*shipment.Shipment, error)
	// UpdateStatus moves one of the caller's shipments along the lifecycle.
	UpdateStatus(ctx context.Context, code string, next shipment.Status) (*shipment.Shipment, error)
}

type shipmentService struct {
	db           *gorm.DB
	log          *logger.Logger
	shipmentRepo repos.ShipmentRepo
}

func NewShipmentService(db *gorm.DB, log *logger.Logger, shipmentRepo repos.ShipmentRepo) ShipmentService {
	return &shipmentService{
		db:           db,
		log:          log.With("service", "ShipmentService"),
		shipmentRepo: shipmentRepo,
	}
}

func (s *shipmentService) Create(ctx context.Context, params CreateShipmentParams) (*shipment.Shipment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.AccountID == uuid.Nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	if err := validateCreateParams(params); err != nil {
		return nil, err
	}

	shp := &shipment.Shipment{
		ID:             uuid.New(),
		SenderName:     strings.TrimSpace(params.SenderName),
		ReceiverName:   strings.TrimSpace(params.ReceiverName),
		ReceiverMobile: strings.TrimSpace(params.ReceiverMobile),
		Origin:         strings.TrimSpace(params.Origin),
		Destination:    strings.TrimSpace(params.Destination),
		Pickup:         params.Pickup,
		Delivery:       params.Delivery,
		WeightKg:       params.WeightKg,
		Status:         shipment.StatusPending,
		AccountID:      rd.AccountID,
		CreatedAt:      time.Now().UTC(),
	}

	for attempt := 0; attempt < trackingCodeAttempts; attempt++ {
		code, err := shipment.NewTrackingCode()
		if err != nil {
			return nil, err
		}
		shp.TrackingCode = code

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			exists, err := s.shipmentRepo.TrackingCodeExists(ctx, tx, code)
			if err != nil {
				return fmt.Errorf("check tracking code: %w", err)
			}
			if exists {
				return gorm.ErrDuplicatedKey
			}
			return s.shipmentRepo.Create(ctx, tx, shp)
		})
		if err == nil {
			s.log.Info("shipment created",
				"tracking_code", shp.TrackingCode,
				"account_id", shp.AccountID.String(),
				"weight_kg", shp.WeightKg,
			)
			return shp, nil
		}
		// concurrent creates can still lose the race after the pre-check;
		// the unique index is the authority, so draw a new code and retry
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.log.Warn("tracking code collision, regenerating", "attempt", attempt+1)
			continue
		}
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	return nil, fmt.Errorf("could not assign a unique tracking code after %d attempts", trackingCodeAttempts)
}

func (s *shipmentService) ListMine(ctx context.Context) ([]*shipment.Shipment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.AccountID == uuid.Nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	results, err := s.shipmentRepo.ListByAccount(ctx, nil, rd.AccountID)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return results, nil
}

func (s *shipmentService) Search(ctx context.Context, fragment string) ([]*shipment.Shipment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.AccountID == uuid.Nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	fragment = shipment.NormalizeTrackingCode(fragment)
	if fragment == "" {
		return s.ListMine(ctx)
	}
	results, err := s.shipmentRepo.SearchByAccount(ctx, nil, rd.AccountID, fragment)
	if err != nil {
		return nil, fmt.Errorf("search shipments: %w", err)
	}
	return results, nil
}

func (s *shipmentService) Track(ctx context.Context, code string) (*shipment.Shipment, error) {
	code = shipment.NormalizeTrackingCode(code)
	if code == "" {
		return nil, fmt.Errorf("tracking code required: %w", pkgerrors.ErrInvalidArgument)
	}
	shp, err := s.shipmentRepo.GetByTrackingCode(ctx, nil, code)
	if err != nil {
		return nil, fmt.Errorf("track shipment: %w", err)
	}
	if shp == nil {
		return nil, pkgerrors.ErrNotFound
	}
	return shp, nil
}

func (s *shipmentService) UpdateStatus(ctx context.Context, code string, next shipment.Status) (*shipment.Shipment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.AccountID == uuid.Nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	if !next.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", next, pkgerrors.ErrInvalidArgument)
	}
	code = shipment.NormalizeTrackingCode(code)

	var updated *shipment.Shipment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shp, err := s.shipmentRepo.GetByTrackingCode(ctx, tx, code)
		if err != nil {
			return fmt.Errorf("load shipment: %w", err)
		}
		if shp == nil {
			return pkgerrors.ErrNotFound
		}
		if shp.AccountID != rd.AccountID {
			return pkgerrors.ErrAccessDenied
		}
		if !shp.Status.CanTransitionTo(next) {
			return fmt.Errorf("cannot move shipment from %s to %s: %w", shp.Status, next, pkgerrors.ErrInvalidArgument)
		}
		if err := s.shipmentRepo.UpdateStatus(ctx, tx, shp.ID, next); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		shp.Status = next
		updated = shp
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("shipment status updated", "tracking_code", code, "status", string(next))
	return updated, nil
}

func validateCreateParams(params CreateShipmentParams) error {
	switch {
	case strings.TrimSpace(params.SenderName) == "":
		return fmt.Errorf("sender name is required: %w", pkgerrors.ErrInvalidArgument)
	case strings.TrimSpace(params.ReceiverName) == "":
		return fmt.Errorf("receiver name is required: %w", pkgerrors.ErrInvalidArgument)
	case strings.TrimSpace(params.ReceiverMobile) == "":
		return fmt.Errorf("receiver mobile is required: %w", pkgerrors.ErrInvalidArgument)
	case strings.TrimSpace(params.Origin) == "":
		return fmt.Errorf("origin is required: %w", pkgerrors.ErrInvalidArgument)
	case strings.TrimSpace(params.Destination) == "":
		return fmt.Errorf("destination is required: %w", pkgerrors.ErrInvalidArgument)
	}
	if !(params.WeightKg > 0) {
		return fmt.Errorf("weight must be a positive number, got %v: %w", params.WeightKg, pkgerrors.ErrInvalidArgument)
	}
	return nil
}
