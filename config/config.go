package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App          AppConfig      `yaml:"app"`
	Log          LogConfig      `yaml:"log"`
	Reservations DatabaseConfig `yaml:"reservations"`
	Inventory    DatabaseConfig `yaml:"inventory"`
}

type AppConfig struct {
	Env string `yaml:"env"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DatabaseConfig selects the store backing one program. Path is used by the
// sqlite driver, the remaining fields by postgres.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func (d DatabaseConfig) Validate() error {
	switch d.Driver {
	case DriverSQLite:
		if d.Path == "" {
			return errors.New("sqlite driver requires a path")
		}
	case DriverPostgres:
		if d.Host == "" || d.Name == "" {
			return errors.New("postgres driver requires host and name")
		}
	default:
		return fmt.Errorf("unknown database driver %q", d.Driver)
	}
	return nil
}

// Default is the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		App: AppConfig{Env: "development"},
		Log: LogConfig{Level: "info", File: "flightdesk.log"},
		Reservations: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   "flights.db",
		},
		Inventory: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   "flight_reservation.db",
		},
	}
}

func (c *Config) Validate() error {
	if err := c.Reservations.Validate(); err != nil {
		return fmt.Errorf("reservations: %w", err)
	}
	if err := c.Inventory.Validate(); err != nil {
		return fmt.Errorf("inventory: %w", err)
	}
	return nil
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
