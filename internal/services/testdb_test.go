package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/swiftparcel/swiftparcel-backend/internal/domain/account"
	"github.com/swiftparcel/swiftparcel-backend/internal/domain/auth"
	"github.com/swiftparcel/swiftparcel-backend/internal/domain/shipment"
	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
	"github.com/swiftparcel/swiftparcel-backend/internal/repos"
	"github.com/swiftparcel/swiftparcel-backend/internal/requestdata"
)

type testEnv struct {
	db       *gorm.DB
	auth     AuthService
	account  AccountService
	shipment ShipmentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&account.Account{}, &auth.AccountToken{}, &shipment.Shipment{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	accountRepo := repos.NewAccountRepo(db, log)
	tokenRepo := repos.NewAccountTokenRepo(db, log)
	shipmentRepo := repos.NewShipmentRepo(db, log)

	return &testEnv{
		db:       db,
		auth:     NewAuthService(db, log, accountRepo, tokenRepo, "test-signing-key", time.Hour, 24*time.Hour),
		account:  NewAccountService(db, log, accountRepo),
		shipment: NewShipmentService(db, log, shipmentRepo),
	}
}

func (e *testEnv) register(t *testing.T, email, mobile, password string) *account.Account {
	t.Helper()
	acct, err := e.auth.Register(context.Background(), RegisterParams{
		Name:     "Test Account",
		Email:    email,
		Mobile:   mobile,
		Password: password,
		Kind:     account.KindIndividual,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return acct
}

func authedCtx(accountID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		AccountID: accountID,
	})
}

func validCreateParams() CreateShipmentParams {
	return CreateShipmentParams{
		SenderName:     "Amina Rahman",
		ReceiverName:   "Tanvir Ahmed",
		ReceiverMobile: "01811111111",
		Origin:         "Dhaka",
		Destination:    "Sylhet",
		Pickup: shipment.Address{
			Line1:      "12 Green Road",
			PostalCode: "1205",
			State:      "Dhaka",
			Country:    "Bangladesh",
		},
		Delivery: shipment.Address{
			Line1:      "7 Zinda Bazar",
			PostalCode: "3100",
			State:      "Sylhet",
			Country:    "Bangladesh",
		},
		WeightKg: 2.5,
	}
}
