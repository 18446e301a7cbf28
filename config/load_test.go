package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults when no environment is set", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9300, cfg.Server.Port)
		assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
		assert.NotEmpty(t, cfg.HTTP.UserAgent)
		assert.Equal(t, 1, cfg.Pipeline.FetchConcurrency)
		assert.Equal(t, 1000, cfg.Pipeline.NotificationBatchSize)
	})

	t.Run("should apply environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("HTTP_TIMEOUT", "45s")
		t.Setenv("HTTP_USER_AGENT", "custom-agent/2.0")
		t.Setenv("PIPELINE_FETCH_CONCURRENCY", "4")
		t.Setenv("PIPELINE_NOTIFICATION_BATCH_SIZE", "250")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 45*time.Second, cfg.HTTP.Timeout)
		assert.Equal(t, "custom-agent/2.0", cfg.HTTP.UserAgent)
		assert.Equal(t, 4, cfg.Pipeline.FetchConcurrency)
		assert.Equal(t, 250, cfg.Pipeline.NotificationBatchSize)
	})

	t.Run("should reject malformed integers", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "not-a-number")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SERVER_PORT")
	})

	t.Run("should reject malformed durations", func(t *testing.T) {
		t.Setenv("HTTP_TIMEOUT", "ten seconds")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
	})
}

func TestValidateConfig(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*Config)
		wantErr string
	}{
		"valid defaults pass": {
			mutate:  func(*Config) {},
			wantErr: "",
		},
		"port out of range": {
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server port",
		},
		"zero port": {
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server port",
		},
		"non-positive timeout": {
			mutate:  func(c *Config) { c.HTTP.Timeout = 0 },
			wantErr: "HTTP timeout",
		},
		"empty user agent": {
			mutate:  func(c *Config) { c.HTTP.UserAgent = "" },
			wantErr: "user agent",
		},
		"zero concurrency": {
			mutate:  func(c *Config) { c.Pipeline.FetchConcurrency = 0 },
			wantErr: "fetch concurrency",
		},
		"zero batch size": {
			mutate:  func(c *Config) { c.Pipeline.NotificationBatchSize = 0 },
			wantErr: "notification batch size",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := validateConfig(cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
