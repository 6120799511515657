package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Nasa struct {
		ApiKey string `env:"APOD_API_KEY"`
	}
	Storage struct {
		ImageDir string `env:"APOD_IMAGE_DIR"`
	}
	Schedule struct {
		Enabled bool `env:"SCHEDULE_ENABLED" env-default:"false"`
		Hour    int  `env:"SCHEDULE_HOUR" env-default:"9"`
		Minute  int  `env:"SCHEDULE_MINUTE" env-default:"30"`
	}
	Telegram struct {
		User    int64  `env:"TELEGRAM_USER"`
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel string `env:"TELEGRAM_CHANNEL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
}

// configFileName is the optional JSON config file in the user's home
// directory, kept for compatibility with the original CLI workflow.
const configFileName = ".apod"

type fileConfig struct {
	ApiKey   *string `json:"api_key"`
	ImageDir *string `json:"image_dir"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("failed to read environment: %w\n%s", err, help)
	}
	if err := applyConfigFile(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyConfigFile fills fields the environment left unset from
// $HOME/.apod. A missing home directory or missing file is not an
// error; a file that cannot be read or parsed is.
func applyConfigFile(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	data, err := os.ReadFile(filepath.Join(home, configFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("unable to read config: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("unable to parse config: %w", err)
	}

	if cfg.Nasa.ApiKey == "" && fc.ApiKey != nil {
		cfg.Nasa.ApiKey = *fc.ApiKey
	}
	if cfg.Storage.ImageDir == "" && fc.ImageDir != nil {
		cfg.Storage.ImageDir = *fc.ImageDir
	}
	return nil
}

// GetDSN builds the postgres connection string for the fetch archive.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
