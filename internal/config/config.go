package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"3000"`

	// Audience for Google ID token verification.
	GoogleClientID string `env:"GOOGLE_CLIENT_ID,required"`

	// HMAC secret for first-party session tokens.
	JWTSecret string `env:"JWT_SECRET,required"`

	DatabaseDSN string `env:"DATABASE_DSN,required"`

	// Upper bound on verifier + store work for a single request.
	AuthTimeout time.Duration `env:"AUTH_TIMEOUT" envDefault:"10s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
