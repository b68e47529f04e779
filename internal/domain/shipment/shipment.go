package shipment

import (
	"time"

	"github.com/google/uuid"

	"github.com/swiftparcel/swiftparcel-backend/internal/domain/account"
)

// Address is one side of a shipment: where the parcel is picked up or
// delivered. Line2 is optional free text.
type Address struct {
	Line1      string `gorm:"column:line1" json:"line1"`
	Line2      string `gorm:"column:line2" json:"line2,omitempty"`
	PostalCode string `gorm:"column:postal_code" json:"postal_code"`
	State      string `gorm:"column:state" json:"state"`
	Country    string `gorm:"column:country" json:"country"`
}

type Shipment struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	TrackingCode   string           `gorm:"uniqueIndex;not null;column:tracking_code" json:"tracking_code"`
	SenderName     string           `gorm:"not null;column:sender_name" json:"sender_name"`
	ReceiverName   string           `gorm:"not null;column:receiver_name" json:"receiver_name"`
	ReceiverMobile string           `gorm:"not null;column:receiver_mobile" json:"receiver_mobile"`
	Origin         string           `gorm:"not null;column:origin" json:"origin"`
	Destination    string           `gorm:"not null;column:destination" json:"destination"`
	Pickup         Address          `gorm:"embedded;embeddedPrefix:pickup_" json:"pickup"`
	Delivery       Address          `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery"`
	WeightKg       float64          `gorm:"not null;column:weight_kg" json:"weight_kg"`
	Status         Status           `gorm:"not null;column:status" json:"status"`
	AccountID      uuid.UUID        `gorm:"index;not null" json:"account_id"`
	Account        *account.Account `gorm:"constraint:OnDelete:CASCADE;foreignKey:AccountID;references:ID" json:"-"`
	CreatedAt      time.Time        `gorm:"not null" json:"created_at"`
}

func (Shipment) TableName() string { return "shipment" }
