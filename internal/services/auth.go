package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/swiftparcel/swiftparcel-backend/internal/domain/account"
	"github.com/swiftparcel/swiftparcel-backend/internal/domain/auth"
	pkgerrors "github.com/swiftparcel/swiftparcel-backend/internal/pkg/errors"
	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
	"github.com/swiftparcel/swiftparcel-backend/internal/repos"
	"github.com/swiftparcel/swiftparcel-backend/internal/requestdata"
)

type RegisterParams struct {
	Name        string
	Email       string
	Mobile      string
	Password    string
	Kind        account.Kind
	BusinessDoc string
}

type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*account.Account, error)
	// Login matches identifier against email or mobile and returns an
	// access/refresh token pair. Unknown identifier and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, identifier, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context) error
	// ContextFromToken resolves a bearer token to an authenticated identity
	// and threads it through the returned context.
	ContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	AccessTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	accountRepo  repos.AccountRepo
	tokenRepo    repos.AccountTokenRepo
	jwtSecretKey string
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	accountRepo repos.AccountRepo,
	tokenRepo repos.AccountTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:           db,
		log:          log.With("service", "AuthService"),
		accountRepo:  accountRepo,
		tokenRepo:    tokenRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}
}

// dummyHash keeps the bcrypt comparison in the login path even when the
// identifier is unknown, so both failure modes cost the same.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func (as *authService) Register(ctx context.Context, params RegisterParams) (*account.Account, error) {
	name := strings.TrimSpace(params.Name)
	email := strings.ToLower(strings.TrimSpace(params.Email))
	mobile := strings.TrimSpace(params.Mobile)

	if name == "" || email == "" || mobile == "" || params.Password == "" {
		return nil, fmt.Errorf("name, email, mobile and password are required: %w", pkgerrors.ErrInvalidArgument)
	}
	if !params.Kind.Valid() {
		return nil, fmt.Errorf("unknown account kind %q: %w", params.Kind, pkgerrors.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acct := &account.Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: string(hash),
		Kind:         params.Kind,
		BusinessDoc:  strings.TrimSpace(params.BusinessDoc),
	}

	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emailTaken, err := as.accountRepo.EmailExists(ctx, tx, email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if emailTaken {
			return fmt.Errorf("email taken: %w", pkgerrors.ErrDuplicateIdentity)
		}
		mobileTaken, err := as.accountRepo.MobileExists(ctx, tx, mobile)
		if err != nil {
			return fmt.Errorf("check mobile: %w", err)
		}
		if mobileTaken {
			return fmt.Errorf("mobile taken: %w", pkgerrors.ErrDuplicateIdentity)
		}
		if err := as.accountRepo.Create(ctx, tx, acct); err != nil {
			// the unique indexes stay authoritative under concurrent registration
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("identity race: %w", pkgerrors.ErrDuplicateIdentity)
			}
			return fmt.Errorf("create account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	as.log.Info("account registered", "account_id", acct.ID.String(), "kind", string(acct.Kind))
	return acct, nil
}

func (as *authService) Login(ctx context.Context, identifier, password string) (string, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", "", fmt.Errorf("identifier and password are required: %w", pkgerrors.ErrInvalidCredentials)
	}

	acct, err := as.accountRepo.GetByIdentifier(ctx, nil, identifier)
	if err != nil {
		return "", "", fmt.Errorf("look up account: %w", err)
	}
	if acct == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", "", pkgerrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", "", pkgerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := as.issueTokens(ctx, acct.ID)
	if err != nil {
		return "", "", err
	}
	as.log.Info("login succeeded", "account_id", acct.ID.String())
	return accessToken, refreshToken, nil
}

func (as *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return "", "", fmt.Errorf("refresh token required: %w", pkgerrors.ErrUnauthorized)
	}

	var accessToken, newRefreshToken string
	var expired bool
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := as.tokenRepo.GetByRefreshToken(ctx, tx, refreshToken)
		if err != nil {
			return fmt.Errorf("look up refresh token: %w", err)
		}
		if existing == nil {
			return pkgerrors.ErrUnauthorized
		}
		if existing.ExpiresAt.Before(time.Now()) {
			// commit the cleanup, report the failure after the transaction
			expired = true
			if err := as.tokenRepo.Delete(ctx, tx, existing); err != nil {
				return fmt.Errorf("delete expired token: %w", err)
			}
			return nil
		}
		access, refresh, err := as.issueTokensTx(ctx, tx, existing.AccountID)
		if err != nil {
			return err
		}
		if err := as.tokenRepo.Delete(ctx, tx, existing); err != nil {
			return fmt.Errorf("rotate refresh token: %w", err)
		}
		accessToken, newRefreshToken = access, refresh
		return nil
	})
	if err != nil {
		return "", "", err
	}
	if expired {
		return "", "", fmt.Errorf("refresh token expired: %w", pkgerrors.ErrUnauthorized)
	}
	return accessToken, newRefreshToken, nil
}

func (as *authService) Logout(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return pkgerrors.ErrUnauthorized
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := as.tokenRepo.GetByAccessToken(ctx, tx, rd.TokenString)
		if err != nil {
			return fmt.Errorf("look up session: %w", err)
		}
		if token == nil {
			// already logged out
			return nil
		}
		if err := as.tokenRepo.Delete(ctx, tx, token); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}

func (as *authService) ContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, pkgerrors.ErrUnauthorized
	}
	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, pkgerrors.ErrUnauthorized
	}

	// a deleted token row means the session was logged out before expiry
	stored, err := as.tokenRepo.GetByAccessToken(ctx, nil, tokenString)
	if err != nil {
		return ctx, fmt.Errorf("look up session: %w", err)
	}
	if stored == nil || stored.AccountID != accountID {
		return ctx, pkgerrors.ErrUnauthorized
	}

	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		TokenString: tokenString,
		AccountID:   accountID,
	}), nil
}

func (as *authService) AccessTTL() time.Duration {
	return as.accessTTL
}

func (as *authService) issueTokens(ctx context.Context, accountID uuid.UUID) (string, string, error) {
	var access, refresh string
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		access, refresh, err = as.issueTokensTx(ctx, tx, accountID)
		return err
	})
	return access, refresh, err
}

func (as *authService) issueTokensTx(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (string, string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		// jti keeps concurrent logins from minting identical tokens
		ID:        uuid.New().String(),
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		return "", "", fmt.Errorf("sign access token: %w", err)
	}
	refreshToken := uuid.New().String()
	record := &auth.AccountToken{
		ID:           uuid.New(),
		AccountID:    accountID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(as.refreshTTL),
	}
	if err := as.tokenRepo.Create(ctx, tx, record); err != nil {
		return "", "", fmt.Errorf("persist session token: %w", err)
	}
	return accessToken, refreshToken, nil
}
