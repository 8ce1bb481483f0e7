package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"GudangPro"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		// Driver selects the durable collaborator: postgres, file, or
		// memory (non-durable, for development only).
		Driver string `envconfig:"STORAGE_DRIVER" default:"file"`
		Path   string `envconfig:"STORAGE_PATH" default:"data/gudangpro.json"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"gudangpro"`
	}

	Auth struct {
		Secret     string        `envconfig:"AUTH_SECRET" default:"dev-secret-change-me"`
		LoginDelay time.Duration `envconfig:"AUTH_LOGIN_DELAY" default:"1s"`
	}

	QR struct {
		BaseURL string `envconfig:"QR_BASE_URL" default:"https://api.qrserver.com/v1/create-qr-code/"`
		Size    int    `envconfig:"QR_SIZE" default:"300"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
