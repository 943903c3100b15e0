package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Kasir Toko Plastik"`
		Port string `envconfig:"PORT" default:"3000"`
	}

	DB struct {
		// URL menang atas field DB_* kalau di-set (mis. Supabase / Railway)
		URL      string `envconfig:"DATABASE_URL"`
		Host     string `envconfig:"DB_HOST"`
		Port     string `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER"`
		Password string `envconfig:"DB_PASSWORD"`
		Name     string `envconfig:"DB_NAME"`

		// Fallback SQLite file kalau tidak ada konfigurasi Postgres sama sekali
		SQLitePath string `envconfig:"DB_PATH" default:"toko_plastik.db"`
	}
}

// PostgresDSN merakit DSN dari field DB_*.
func (c *Config) PostgresDSN() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port,
	)
}

// UsePostgres true kalau ada konfigurasi Postgres (URL atau host).
func (c *Config) UsePostgres() bool {
	return c.DB.URL != "" || c.DB.Host != ""
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
