package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel  int      `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"text"`
	AppEnv    string   `env:"APP_ENV" envDefault:"development"`
	HTTP      HTTP     `envPrefix:"HTTP_"`
	GRPC      GRPC     `envPrefix:"GRPC_"`
	Database  Database `envPrefix:"DATABASE_"`
	JWT       JWT      `envPrefix:"JWT_"`
	Refresh   Refresh  `envPrefix:"REFRESH_"`
	Auth      Auth     `envPrefix:"AUTH_"`
	Cleanup   Cleanup  `envPrefix:"CLEANUP_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// GRPC contains gRPC server parameters.
type GRPC struct {
	Port               string `env:"PORT" envDefault:"50051"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains database connection parameters. An empty DSN selects
// the in-memory stores.
type Database struct {
	DSN string `env:"DSN"`
}

// JWT contains access token parameters.
type JWT struct {
	Secret    string        `env:"SECRET"`
	AccessTTL time.Duration `env:"ACCESS_TTL" envDefault:"15m"`
}

// Refresh contains refresh token parameters.
type Refresh struct {
	TTL time.Duration `env:"TTL" envDefault:"168h"`
}

// Auth contains account parameters.
type Auth struct {
	BcryptCost       int  `env:"BCRYPT_COST" envDefault:"10"`
	AllowAdminSignup bool `env:"ALLOW_ADMIN_SIGNUP" envDefault:"false"`
}

// Cleanup controls removal of long-expired refresh tokens. A zero interval
// disables it.
type Cleanup struct {
	Interval  time.Duration `env:"INTERVAL" envDefault:"0"`
	Retention time.Duration `env:"RETENTION" envDefault:"720h"`
}

// IsProduction reports whether cookies must be marked Secure.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
