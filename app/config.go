package app

import (
	"fmt"
	"time"

	"github.com/uceva/country-service/app/database"
	"github.com/uceva/country-service/internal/nexus"
)

type Config struct {
	DB database.Config

	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080" validate:"required,numeric"`
	Env      string `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info error fatal off"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s"`
	AutoMigrate     bool          `env:"AUTO_MIGRATE" env-default:"false"`
	PublicURL       string        `env:"APP_PUBLIC_URL"`
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// LoadConfig loads the application configuration from environment variables and, when
// fileName is set, from that file. An empty fileName falls back to ./.env if present.
func LoadConfig(fileName string) (*Config, error) {
	c := &Config{}

	var opts []nexus.LoaderOption
	if fileName != "" {
		opts = append(opts, nexus.WithFileName(fileName))
	}

	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}
