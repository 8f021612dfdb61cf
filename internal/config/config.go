package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers accepted in DB_DRIVER
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Import   ImportConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	SQLitePath      string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ImportConfig locates the statement file imported on startup and by
// imports that do not name a file
type ImportConfig struct {
	DataFile  string
	OnStartup bool
}

type SecurityConfig struct {
	RateLimitPerSecond float64
	RateLimitBurst     int
	// TrustProxyHeaders takes the client address from X-Forwarded-For when
	// the request arrives from a loopback or private network proxy
	TrustProxyHeaders  bool
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			SQLitePath:      getEnv("SQLITE_PATH", "transactions.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "transactions_user"),
			Password:        getEnv("DB_PASSWORD", "transactions_password"),
			Name:            getEnv("DB_NAME", "transactions_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Import: ImportConfig{
			DataFile:  getEnv("IMPORT_DATA_FILE", "data/transactions.json"),
			OnStartup: getBoolEnv("IMPORT_ON_STARTUP", true),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getFloatEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			TrustProxyHeaders:  getBoolEnv("TRUST_PROXY_HEADERS", false),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be a port number, got %q", c.Server.Port))
	}

	switch c.Database.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be one of %s, %s, %s, got %q",
			DriverMemory, DriverSQLite, DriverPostgres, c.Database.Driver))
	}

	if c.Database.MaxConnections < 1 {
		errs = append(errs, errors.New("DB_MAX_CONNECTIONS must be positive"))
	}

	if c.Import.OnStartup && c.Import.DataFile == "" {
		errs = append(errs, errors.New("IMPORT_DATA_FILE is required when IMPORT_ON_STARTUP is set"))
	}

	if c.Security.RateLimitPerSecond <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND must be positive"))
	}
	if c.Security.RateLimitBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be positive"))
	}

	return errors.Join(errs...)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envOr parses key with parse, falling back to defaultValue when the
// variable is unset or malformed.
func envOr[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := parse(value)
	if err != nil {
		slog.Warn("ignoring malformed environment variable", "key", key, "value", value, "default", defaultValue)
		return defaultValue
	}
	return parsed
}

func getIntEnv(key string, defaultValue int) int {
	return envOr(key, defaultValue, strconv.Atoi)
}

func getFloatEnv(key string, defaultValue float64) float64 {
	return envOr(key, defaultValue, func(v string) (float64, error) { return strconv.ParseFloat(v, 64) })
}

func getBoolEnv(key string, defaultValue bool) bool {
	return envOr(key, defaultValue, strconv.ParseBool)
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	return envOr(key, defaultValue, time.ParseDuration)
}

// loadCORSAllowOrigins reads the comma separated CORS_ALLOW_ORIGINS, or "*"
func (c *Config) loadCORSAllowOrigins() []string {
	raw := os.Getenv("CORS_ALLOW_ORIGINS")
	if raw == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
		}
		return []string{"*"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
