package account

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes personal accounts from business shippers.
type Kind string

const (
	KindIndividual Kind = "individual"
	KindBusiness   Kind = "business"
)

func (k Kind) Valid() bool {
	switch k {
	case KindIndividual, KindBusiness:
		return true
	}
	return false
}

type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null;column:name" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Mobile       string    `gorm:"uniqueIndex;not null;column:mobile" json:"mobile"`
	PasswordHash string    `gorm:"not null;column:password_hash" json:"-"`
	Kind         Kind      `gorm:"not null;column:kind" json:"kind"`
	BusinessDoc  string    `gorm:"column:business_doc" json:"business_doc,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (Account) TableName() string { return "account" }
