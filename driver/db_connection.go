package driver

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	logger "news-fetcher/utils/logger"
)

// DatabaseConfig holds PostgreSQL connection settings read from NEWS_DB_*
// environment variables.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// NewDatabaseConfig builds the database configuration from the environment.
func NewDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     envOrDefault("NEWS_DB_HOST", "localhost"),
		Port:     envOrDefault("NEWS_DB_PORT", "5432"),
		User:     envOrDefault("NEWS_DB_USER", "news_fetcher"),
		Password: os.Getenv("NEWS_DB_PASSWORD"),
		DBName:   envOrDefault("NEWS_DB_NAME", "news"),
		SSLMode:  envOrDefault("NEWS_DB_SSL_MODE", "disable"),
		MaxConns: int32(intEnvOrDefault("NEWS_DB_MAX_CONNS", 10)),
		MinConns: int32(intEnvOrDefault("NEWS_DB_MIN_CONNS", 2)),
	}
}

// BuildConnectionString renders the config as a pgx connection string.
func (c DatabaseConfig) BuildConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Init creates and pings the connection pool used by all repositories.
func Init(ctx context.Context) (*pgxpool.Pool, error) {
	dbConfig := NewDatabaseConfig()

	config, err := pgxpool.ParseConfig(dbConfig.BuildConnectionString())
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to parse DB config", "error", err)
		return nil, fmt.Errorf("failed to parse DB config: %w", err)
	}

	config.MaxConns = dbConfig.MaxConns
	config.MinConns = dbConfig.MinConns
	config.MaxConnLifetime = 1 * time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	dbPool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to connect to DB", "error", err)
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		logger.Logger.ErrorContext(ctx, "Failed to ping DB", "error", err)
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Logger.InfoContext(ctx, "Connected to database",
		"host", dbConfig.Host,
		"port", dbConfig.Port,
		"database", dbConfig.DBName,
	)

	return dbPool, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func intEnvOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
