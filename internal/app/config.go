package app

import (
	"fmt"
	"time"

	"github.com/swiftparcel/swiftparcel-backend/internal/platform/envutil"
	"github.com/swiftparcel/swiftparcel-backend/internal/platform/logger"
)

type Config struct {
	Port            string
	Environment     string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// LoadConfig reads configuration once at startup. The JWT signing key is
// provisioned from the environment and stays stable for the process
// lifetime; it is never regenerated per start.
func LoadConfig(log *logger.Logger) (Config, error) {
	jwtSecretKey := envutil.GetEnv("JWT_SECRET_KEY", "", log)
	if jwtSecretKey == "" {
		return Config{}, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	accessTTLSeconds := envutil.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTTLSeconds := envutil.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	return Config{
		Port:            envutil.GetEnv("PORT", "8080", log),
		Environment:     envutil.GetEnv("APP_ENV", "development", log),
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTTLSeconds) * time.Second,
	}, nil
}
