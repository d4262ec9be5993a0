// Package db owns the shared pgx pool used by the snapshot store and the
// query log. The pool is created once on first use; route queries
// themselves never touch Postgres.
package db

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool     *pgxpool.Pool
	poolOnce sync.Once
	poolErr  error
)

// Config is the Postgres connection configuration.
type Config struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	// PoolMode "transaction" marks a transaction-mode pooler (pgbouncer
	// and the like) in front of the database.
	PoolMode string
	MinConns int32
	MaxConns int32
}

// LoadConfigFromEnv reads the DB_* environment variables, with defaults
// suitable for a local development database.
func LoadConfigFromEnv() *Config {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	minConns, _ := strconv.Atoi(getEnv("DB_MIN_CONNS", "2"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))

	return &Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		Database: getEnv("DB_NAME", "mrtroute"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
		PoolMode: getEnv("DB_POOL_MODE", "session"),
		MinConns: int32(minConns),
		MaxConns: int32(maxConns),
	}
}

// GetDB returns the process-wide connection pool, creating it from the
// environment on first call. The first call's error is sticky.
func GetDB() (*pgxpool.Pool, error) {
	poolOnce.Do(func() {
		pool, poolErr = InitPoolWithConfig(LoadConfigFromEnv())
	})
	return pool, poolErr
}

// InitPoolWithConfig builds a pool from an explicit config, bypassing the
// environment singleton.
func InitPoolWithConfig(config *Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		config.Host, config.Port, config.Database,
		config.User, config.Password, config.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Snapshot loads and query-log inserts are short and infrequent; a
	// small pool with hourly connection recycling covers them.
	poolConfig.MinConns = config.MinConns
	poolConfig.MaxConns = config.MaxConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Transaction-mode poolers reject server-side prepared statements.
	if config.PoolMode == "transaction" {
		poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return p, nil
}

// Close releases the shared pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}

// HealthCheck pings the shared pool for the /health endpoint.
func HealthCheck(ctx context.Context) error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("database connection not initialized: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
