// ABOUTME: This file defines the typed service configuration with defaults
// ABOUTME: Values are overridden from environment variables at startup
package config

import "time"

type Config struct {
	Server   ServerConfig   `json:"server"`
	HTTP     HTTPConfig     `json:"http"`
	Pipeline PipelineConfig `json:"pipeline"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"120s"` // manual trigger runs a full fetch inline
}

type HTTPConfig struct {
	Timeout             time.Duration `json:"timeout" env:"HTTP_TIMEOUT" default:"30s"`
	MaxIdleConns        int           `json:"max_idle_conns" env:"HTTP_MAX_IDLE_CONNS" default:"10"`
	MaxIdleConnsPerHost int           `json:"max_idle_conns_per_host" env:"HTTP_MAX_IDLE_CONNS_PER_HOST" default:"2"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
	UserAgent           string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"news-fetcher/1.0 (+https://example.com/news-fetcher)"`
}

type PipelineConfig struct {
	// FetchConcurrency bounds parallel source fetches. 1 keeps the
	// reference sequential behavior; per-source error isolation holds at
	// any value.
	FetchConcurrency      int `json:"fetch_concurrency" env:"PIPELINE_FETCH_CONCURRENCY" default:"1"`
	NotificationBatchSize int `json:"notification_batch_size" env:"PIPELINE_NOTIFICATION_BATCH_SIZE" default:"1000"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            9300,
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    120 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout:             30 * time.Second,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
			UserAgent:           "news-fetcher/1.0 (+https://example.com/news-fetcher)",
		},
		Pipeline: PipelineConfig{
			FetchConcurrency:      1,
			NotificationBatchSize: 1000,
		},
	}
}
