package config

import "fmt"

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", config.Server.Port)
	}

	if config.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive, got %s", config.HTTP.Timeout)
	}

	if config.HTTP.UserAgent == "" {
		return fmt.Errorf("HTTP user agent must not be empty")
	}

	if config.Pipeline.FetchConcurrency < 1 {
		return fmt.Errorf("fetch concurrency must be at least 1, got %d", config.Pipeline.FetchConcurrency)
	}

	if config.Pipeline.NotificationBatchSize < 1 {
		return fmt.Errorf("notification batch size must be at least 1, got %d", config.Pipeline.NotificationBatchSize)
	}

	return nil
}
