package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{Driver: DriverMemory},
		Monitor: MonitorConfig{
			ExpiryWindow:  10 * time.Minute,
			ConfirmDelay:  45 * time.Second,
			SweepInterval: 2 * time.Minute,
		},
		Oracle: OracleConfig{Mode: OracleModeSimulated, SuccessRate: 0.75},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"server host", cfg.Server.Host, "0.0.0.0"},
		{"server port", cfg.Server.Port, 8080},
		{"server mode", cfg.Server.Mode, "debug"},
		{"database driver", cfg.Database.Driver, DriverPostgres},
		{"database name", cfg.Database.DBName, "cryptopay_gateway"},
		{"pool max", cfg.Database.MaxConns, int32(20)},
		{"pool min", cfg.Database.MinConns, int32(5)},
		{"conn lifetime", cfg.Database.ConnMaxLifetime, 30 * time.Minute},
		{"auto migrate", cfg.Database.AutoMigrate, false},
		{"redis addr", cfg.Redis.Addr(), "localhost:6379"},
		{"jwt expiry", cfg.JWT.Expiry, 24 * time.Hour},
		{"jwt issuer", cfg.JWT.Issuer, "cryptopay-gateway"},
		{"log level", cfg.Log.Level, "info"},
		{"expiry window", cfg.Monitor.ExpiryWindow, 10 * time.Minute},
		{"confirm delay", cfg.Monitor.ConfirmDelay, 45 * time.Second},
		{"sweep interval", cfg.Monitor.SweepInterval, 2 * time.Minute},
		{"oracle mode", cfg.Oracle.Mode, OracleModeHTTP},
		{"oracle timeout", cfg.Oracle.Timeout, 15 * time.Second},
		{"oracle success rate", cfg.Oracle.SuccessRate, 0.75},
		{"webhook timeout", cfg.Webhook.Timeout, 10 * time.Second},
		{"webhook retries", cfg.Webhook.MaxRetries, uint64(5)},
		{"admin username", cfg.Admin.Username, "admin"},
		{"admin password", cfg.Admin.Password, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeYAML(t, `
database:
  driver: memory
monitor:
  expiry_window: 5m
  confirm_delay: 20s
  sweep_interval: 1m
oracle:
  mode: simulated
  success_rate: 0.5
  error_rate: 0.1
webhook:
  timeout: 3s
  max_retries: 2
admin:
  username: ops
  password: bootstrap-me
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, MonitorConfig{
		ExpiryWindow:  5 * time.Minute,
		ConfirmDelay:  20 * time.Second,
		SweepInterval: time.Minute,
	}, cfg.Monitor)
	assert.Equal(t, OracleModeSimulated, cfg.Oracle.Mode)
	assert.InDelta(t, 0.5, cfg.Oracle.SuccessRate, 1e-9)
	assert.InDelta(t, 0.1, cfg.Oracle.ErrorRate, 1e-9)
	assert.Equal(t, WebhookConfig{Timeout: 3 * time.Second, MaxRetries: 2}, cfg.Webhook)
	assert.Equal(t, AdminConfig{Username: "ops", Password: "bootstrap-me"}, cfg.Admin)

	// Untouched sections keep their defaults.
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:9000/api", cfg.Oracle.BaseURL)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeYAML(t, "oracle:\n  mode: simulated\nserver:\n  port: 7000\n")

	t.Setenv("CPG_SERVER_PORT", "9090")
	t.Setenv("CPG_MONITOR_CONFIRM_DELAY", "30s")
	t.Setenv("CPG_ORACLE_API_KEY", "oracle-key")
	t.Setenv("CPG_DATABASE_AUTO_MIGRATE", "true")
	t.Setenv("CPG_LOG_PRETTY", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Monitor.ConfirmDelay)
	assert.Equal(t, "oracle-key", cfg.Oracle.APIKey)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, OracleModeSimulated, cfg.Oracle.Mode)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"driver", map[string]string{"CPG_DATABASE_DRIVER": "sqlite"}, `"sqlite"`},
		{"oracle mode", map[string]string{"CPG_ORACLE_MODE": "carrier-pigeon"}, "oracle mode"},
		{"confirm after expiry", map[string]string{"CPG_MONITOR_CONFIRM_DELAY": "11m"}, "shorter than"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		db   DatabaseConfig
		want string
	}{
		{
			name: "plain",
			db:   DatabaseConfig{Host: "db", Port: 5432, User: "gw", Password: "pw", DBName: "ledger", SSLMode: "disable"},
			want: "postgres://gw:pw@db:5432/ledger?sslmode=disable",
		},
		{
			name: "escaped password",
			db:   DatabaseConfig{Host: "db", Port: 6432, User: "gw", Password: "p@ss/word", DBName: "ledger", SSLMode: "require"},
			want: "postgres://gw:p%40ss%2Fword@db:6432/ledger?sslmode=require",
		},
		{
			name: "ipv6 host",
			db:   DatabaseConfig{Host: "::1", Port: 5432, User: "gw", Password: "pw", DBName: "ledger", SSLMode: "disable"},
			want: "postgres://gw:pw@[::1]:5432/ledger?sslmode=disable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.db.DSN())
		})
	}
}

func TestRedisConfig_Addr(t *testing.T) {
	assert.Equal(t, "cache:6380", RedisConfig{Host: "cache", Port: 6380}.Addr())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"postgres driver", func(c *Config) { c.Database.Driver = DriverPostgres }, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"http oracle", func(c *Config) { c.Oracle.Mode = OracleModeHTTP }, false},
		{"unknown oracle", func(c *Config) { c.Oracle.Mode = "" }, true},
		{"zero expiry window", func(c *Config) { c.Monitor.ExpiryWindow = 0 }, true},
		{"zero confirm delay", func(c *Config) { c.Monitor.ConfirmDelay = 0 }, true},
		{"negative sweep", func(c *Config) { c.Monitor.SweepInterval = -time.Second }, true},
		{"confirm equals expiry", func(c *Config) { c.Monitor.ConfirmDelay = c.Monitor.ExpiryWindow }, true},
		{"success rate above one", func(c *Config) { c.Oracle.SuccessRate = 1.01 }, true},
		{"negative error rate", func(c *Config) { c.Oracle.ErrorRate = -0.1 }, true},
		{"certain outcomes", func(c *Config) { c.Oracle.SuccessRate, c.Oracle.ErrorRate = 1, 1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
