package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// TokenConfig holds the signing secret and lifetime for one signing context.
type TokenConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type AppConfig struct {
	ServerPort          string
	DSN                 string
	Logger              *zap.SugaredLogger
	Env                 string
	PublicURL           string
	AdminRegisterSecret string

	TenantAccessToken  TokenConfig
	TenantRefreshToken TokenConfig
	AdminAccessToken   TokenConfig
	AdminRefreshToken  TokenConfig
	VerifyToken        TokenConfig
}

var Config AppConfig

func init() {
	godotenv.Load()
	Dsn := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v", os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	logger := zap.Must(zap.NewProduction()).Sugar()

	Config = AppConfig{
		ServerPort:          os.Getenv("PORT"),
		DSN:                 Dsn,
		Logger:              logger,
		Env:                 os.Getenv("APP_ENV"),
		PublicURL:           os.Getenv("PUBLIC_URL"),
		AdminRegisterSecret: os.Getenv("ADMIN_SECRET_REGISTER"),

		TenantAccessToken:  tokenConfig("ACCESS_TOKEN_SECRET", "ACCESS_TOKEN_EXPIRES_IN", time.Hour),
		TenantRefreshToken: tokenConfig("REFRESH_TOKEN_SECRET", "REFRESH_TOKEN_EXPIRES_IN", 72*time.Hour),
		AdminAccessToken:   tokenConfig("ADMIN_ACCESS_TOKEN_SECRET", "ADMIN_ACCESS_TOKEN_EXPIRES_IN", time.Hour),
		AdminRefreshToken:  tokenConfig("ADMIN_REFRESH_TOKEN_SECRET", "ADMIN_REFRESH_TOKEN_EXPIRES_IN", 72*time.Hour),
		VerifyToken:        tokenConfig("VERIFY_TOKEN_SECRET", "VERIFY_TOKEN_EXPIRES_IN", 24*time.Hour),
	}
}

// IsProduction controls transport hardening such as the Secure cookie flag.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func tokenConfig(secretKey, expiresKey string, fallback time.Duration) TokenConfig {
	expiresIn := fallback
	if raw := os.Getenv(expiresKey); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			expiresIn = parsed
		}
	}
	return TokenConfig{
		Secret:    os.Getenv(secretKey),
		ExpiresIn: expiresIn,
	}
}
