package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the coordinator needs to start. Values come from
// the environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME" envDefault:"dispatch"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	AuthSecret   string        `env:"AUTH_SECRET,required"`
	AuthTokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`
}

// ConsoleConfig is the console binary's slice of the environment. It talks
// to the coordinator over HTTP and never sees the database.
type ConsoleConfig struct {
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`

	BadgePollInterval time.Duration `env:"BADGE_POLL_INTERVAL" envDefault:"10s"`
}

// LoadConfig reads the environment into a Config. A missing .env file is not
// an error; explicitly exported variables always win.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return config, nil
}

// LoadConsoleConfig reads the console binary's environment.
func LoadConsoleConfig() (ConsoleConfig, error) {
	_ = godotenv.Load(".env")

	var config ConsoleConfig
	if err := env.Parse(&config); err != nil {
		return ConsoleConfig{}, fmt.Errorf("parse environment: %w", err)
	}

	return config, nil
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
