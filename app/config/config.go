package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"

	defaultPostgresURL = "host=localhost port=5432 user=postgres dbname=substitution sslmode=disable connect_timeout=60"
)

type Config struct {
	Port         string
	DBDriver     string
	DatabaseURL  string
	MaxOpenConns int
	MaxIdleConns int
	Location     *time.Location
	LogLevel     string
	// DigestAt is the HH:MM local time of the morning cover digest. Empty disables it.
	DigestAt string
}

// LoadEnv reads a .env file when one exists. Missing files are not an error;
// the process environment is used as is.
func LoadEnv() bool {
	return godotenv.Load() == nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(GetEnv(key))
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// Load builds the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     GetEnv("APP_PORT", "8080"),
		DBDriver: strings.ToLower(GetEnv("DB_DRIVER", DriverPostgres)),
		LogLevel: GetEnv("LOG_LEVEL", "info"),
		DigestAt: strings.TrimSpace(GetEnv("COVER_DIGEST_AT", "07:00")),
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		cfg.DatabaseURL = GetEnv("DATABASE_URL", defaultPostgresURL)
	case DriverSQLite:
		cfg.DatabaseURL = GetEnv("DATABASE_URL", "substitution.db")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	var err error
	if cfg.MaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 25); err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return nil, err
	}

	if cfg.DigestAt != "" {
		at, err := time.Parse("15:04", cfg.DigestAt)
		if err != nil {
			return nil, fmt.Errorf("COVER_DIGEST_AT must be HH:MM: %w", err)
		}
		// The scheduler compares against now.Format("15:04").
		cfg.DigestAt = at.Format("15:04")
	}

	cfg.Location = loadLocation(GetEnv("APP_TIMEZONE", "Africa/Kampala"))
	return cfg, nil
}

// loadLocation falls back to a fixed East Africa Time zone when the tz
// database is not available.
func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("EAT", 3*60*60)
	}
	return loc
}

// OpenDB opens the configured database and verifies the connection.
func OpenDB(ctx context.Context, cfg *Config) (*sql.DB, error) {
	db, err := sql.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.DBDriver, err)
	}
	return db, nil
}

// NewLogger builds a production zap logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}
