package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the application configuration. All fields are populated from
// environment variables; every component receives what it needs from here
// instead of reading the environment itself.
type Config struct {
	ServerPort int    `env:"PORT" envDefault:"5000"`
	DataDir    string `env:"DATA_DIR" envDefault:"./data"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"your_jwt_secret_key"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Comma-separated list of origins allowed to call the API.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
