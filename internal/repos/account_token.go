package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/swiftparcel/swiftparcel-backend/internal/domain/auth"
	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
)

type AccountTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, token *auth.AccountToken) error
	GetByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) (*auth.AccountToken, error)
	GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*auth.AccountToken, error)
	Delete(ctx context.Context, tx *gorm.DB, token *auth.AccountToken) error
}

type accountTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAccountTokenRepo(db *gorm.DB, baseLog *logger.Logger) AccountTokenRepo {
	return &accountTokenRepo{db: db, log: baseLog.With("repo", "AccountTokenRepo")}
}

func (tr *accountTokenRepo) Create(ctx context.Context, tx *gorm.DB, token *auth.AccountToken) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).Create(token).Error
}

func (tr *accountTokenRepo) GetByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) (*auth.AccountToken, error) {
	return tr.getBy(ctx, tx, "access_token = ?", accessToken)
}

func (tr *accountTokenRepo) GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*auth.AccountToken, error) {
	return tr.getBy(ctx, tx, "refresh_token = ?", refreshToken)
}

func (tr *accountTokenRepo) Delete(ctx context.Context, tx *gorm.DB, token *auth.AccountToken) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).Delete(token).Error
}

func (tr *accountTokenRepo) getBy(ctx context.Context, tx *gorm.DB, query string, arg string) (*auth.AccountToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var result auth.AccountToken
	err := transaction.WithContext(ctx).Where(query, arg).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
