package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/swiftparcel/swiftparcel-backend/internal/domain/account"
	pkgerrors "github.com/swiftparcel/swiftparcel-backend/internal/pkg/errors"
	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
	"github.com/swiftparcel/swiftparcel-backend/internal/repos"
	"github.com/swiftparcel/swiftparcel-backend/internal/requestdata"
)

type AccountService interface {
	GetMe(ctx context.Context) (*account.Account, error)
}

type accountService struct {
	db          *gorm.DB
	log         *logger.Logger
	accountRepo repos.AccountRepo
}

func NewAccountService(db *gorm.DB, log *logger.Logger, accountRepo repos.AccountRepo) AccountService {
	return &accountService{
		db:          db,
		log:         log.With("service", "AccountService"),
		accountRepo: accountRepo,
	}
}

func (s *accountService) GetMe(ctx context.Context) (*account.Account, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	acct, err := s.accountRepo.GetByID(ctx, nil, rd.AccountID)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	if acct == nil {
		return nil, pkgerrors.ErrNotFound
	}
	return acct, nil
}
