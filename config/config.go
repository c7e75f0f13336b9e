package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AES      AESConfig      `mapstructure:"aes"`
	Log      LogConfig      `mapstructure:"log"`
	Monitor  MonitorConfig  `mapstructure:"monitor"`
	Oracle   OracleConfig   `mapstructure:"oracle"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Ledger store drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, memory
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL URL. Credentials are escaped.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// MonitorConfig drives the deposit lifecycle timers.
type MonitorConfig struct {
	ExpiryWindow  time.Duration `mapstructure:"expiry_window"`
	ConfirmDelay  time.Duration `mapstructure:"confirm_delay"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// Oracle modes.
const (
	OracleModeHTTP      = "http"
	OracleModeSimulated = "simulated"
)

type OracleConfig struct {
	Mode        string        `mapstructure:"mode"` // http, simulated
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	SuccessRate float64       `mapstructure:"success_rate"`
	ErrorRate   float64       `mapstructure:"error_rate"`
}

type WebhookConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries uint64        `mapstructure:"max_retries"`
}

// AdminConfig bootstraps the first admin account on startup. Empty password
// disables bootstrapping.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

var defaults = map[string]any{
	"server.host":                "0.0.0.0",
	"server.port":                8080,
	"server.mode":                "debug",
	"database.driver":            DriverPostgres,
	"database.host":              "localhost",
	"database.port":              5432,
	"database.user":              "postgres",
	"database.password":          "postgres",
	"database.dbname":            "cryptopay_gateway",
	"database.sslmode":           "disable",
	"database.max_conns":         20,
	"database.min_conns":         5,
	"database.conn_max_lifetime": "30m",
	"database.auto_migrate":      false,
	"redis.host":                 "localhost",
	"redis.port":                 6379,
	"redis.password":             "",
	"redis.db":                   0,
	"jwt.secret":                 "",
	"jwt.expiry":                 "24h",
	"jwt.issuer":                 "cryptopay-gateway",
	"aes.key":                    "",
	"log.level":                  "info",
	"log.pretty":                 false,
	"monitor.expiry_window":      "10m",
	"monitor.confirm_delay":      "45s",
	"monitor.sweep_interval":     "2m",
	"oracle.mode":                OracleModeHTTP,
	"oracle.base_url":            "http://localhost:9000/api",
	"oracle.api_key":             "",
	"oracle.timeout":             "15s",
	"oracle.success_rate":        0.75,
	"oracle.error_rate":          0.0,
	"webhook.timeout":            "10s",
	"webhook.max_retries":        5,
	"admin.username":             "admin",
	"admin.password":             "",
}

// Load layers defaults, an optional YAML file and CPG_-prefixed environment
// variables, in increasing priority. Nested keys map to env names with
// underscores: monitor.confirm_delay is CPG_MONITOR_CONFIRM_DELAY.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CPG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CPG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the gateway cannot run with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Oracle.Mode {
	case OracleModeHTTP, OracleModeSimulated:
	default:
		return fmt.Errorf("unsupported oracle mode %q", c.Oracle.Mode)
	}
	if c.Monitor.ExpiryWindow <= 0 {
		return fmt.Errorf("monitor.expiry_window must be positive")
	}
	if c.Monitor.ConfirmDelay <= 0 || c.Monitor.SweepInterval <= 0 {
		return fmt.Errorf("monitor.confirm_delay and monitor.sweep_interval must be positive")
	}
	if c.Monitor.ConfirmDelay >= c.Monitor.ExpiryWindow {
		return fmt.Errorf("monitor.confirm_delay %s must be shorter than monitor.expiry_window %s",
			c.Monitor.ConfirmDelay, c.Monitor.ExpiryWindow)
	}
	if c.Oracle.SuccessRate < 0 || c.Oracle.SuccessRate > 1 || c.Oracle.ErrorRate < 0 || c.Oracle.ErrorRate > 1 {
		return fmt.Errorf("oracle rates must be within [0, 1]")
	}
	return nil
}
