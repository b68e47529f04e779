package repos

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swiftparcel/swiftparcel-backend/internal/domain/account"
	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
)

type AccountRepo interface {
	Create(ctx context.Context, tx *gorm.DB, acct *account.Account) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*account.Account, error)
	// GetByIdentifier matches the login identifier against email OR mobile.
	GetByIdentifier(ctx context.Context, tx *gorm.DB, identifier string) (*account.Account, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	MobileExists(ctx context.Context, tx *gorm.DB, mobile string) (bool, error)
}

type accountRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAccountRepo(db *gorm.DB, baseLog *logger.Logger) AccountRepo {
	return &accountRepo{db: db, log: baseLog.With("repo", "AccountRepo")}
}

func (ar *accountRepo) Create(ctx context.Context, tx *gorm.DB, acct *account.Account) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).Create(acct).Error
}

func (ar *accountRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*account.Account, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var result account.Account
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (ar *accountRepo) GetByIdentifier(ctx context.Context, tx *gorm.DB, identifier string) (*account.Account, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var result account.Account
	// emails are stored lowercased, so fold the identifier for the email
	// match; mobiles are compared as entered
	err := transaction.WithContext(ctx).
		Where("email = ? OR mobile = ?", strings.ToLower(identifier), identifier).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (ar *accountRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	return ar.exists(ctx, tx, "email = ?", email)
}

func (ar *accountRepo) MobileExists(ctx context.Context, tx *gorm.DB, mobile string) (bool, error) {
	return ar.exists(ctx, tx, "mobile = ?", mobile)
}

func (ar *accountRepo) exists(ctx context.Context, tx *gorm.DB, query string, arg string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&account.Account{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
