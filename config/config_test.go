package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "flights.db", cfg.Reservations.Path)
	assert.Equal(t, "flight_reservation.db", cfg.Inventory.Path)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
log:
  level: debug
reservations:
  driver: postgres
  host: localhost
  port: 5432
  user: app
  password: secret
  name: reservations
  ssl_mode: disable
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "flightdesk.log", cfg.Log.File)
	assert.Equal(t, DriverPostgres, cfg.Reservations.Driver)
	assert.Equal(t, "host=localhost port=5432 user=app password=secret dbname=reservations sslmode=disable", cfg.Reservations.DSN())
	assert.Equal(t, DriverSQLite, cfg.Inventory.Driver)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inventory:\n  driver: mysql\n"), 0o600))

	cfg, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), `unknown database driver "mysql"`)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated"), 0o600))

	_, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestDatabaseConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     DatabaseConfig
		wantErr bool
	}{
		{name: "sqlite ok", cfg: DatabaseConfig{Driver: DriverSQLite, Path: "x.db"}},
		{name: "sqlite without path", cfg: DatabaseConfig{Driver: DriverSQLite}, wantErr: true},
		{name: "postgres ok", cfg: DatabaseConfig{Driver: DriverPostgres, Host: "db", Name: "app"}},
		{name: "postgres without host", cfg: DatabaseConfig{Driver: DriverPostgres, Name: "app"}, wantErr: true},
		{name: "empty driver", cfg: DatabaseConfig{}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
