package config

import "fmt"

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be positive: %d", config.Database.MaxConnections)
	}

	if config.HTTP.FeedFetchTimeout <= 0 {
		return fmt.Errorf("feed fetch timeout must be positive: %s", config.HTTP.FeedFetchTimeout)
	}

	if config.HTTP.PageFetchTimeout <= 0 {
		return fmt.Errorf("page fetch timeout must be positive: %s", config.HTTP.PageFetchTimeout)
	}

	if config.Refresh.Interval < 0 {
		return fmt.Errorf("refresh interval must not be negative: %s", config.Refresh.Interval)
	}

	if config.Pagination.DefaultPerPage < 1 {
		return fmt.Errorf("default per page must be positive: %d", config.Pagination.DefaultPerPage)
	}

	if config.Pagination.MaxPerPage < config.Pagination.DefaultPerPage {
		return fmt.Errorf("max per page (%d) must not be below default per page (%d)",
			config.Pagination.MaxPerPage, config.Pagination.DefaultPerPage)
	}

	return nil
}
