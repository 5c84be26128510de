package config

import "time"

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	HTTP       HTTPConfig       `json:"http"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
	Refresh    RefreshConfig    `json:"refresh"`
	Logging    LoggingConfig    `json:"logging"`
	Pagination PaginationConfig `json:"pagination"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type HTTPConfig struct {
	// FeedFetchTimeout bounds retrieval and parsing of a feed document.
	FeedFetchTimeout time.Duration `json:"feed_fetch_timeout" env:"HTTP_FEED_FETCH_TIMEOUT" default:"30s"`
	// PageFetchTimeout bounds retrieval of an article's source page.
	PageFetchTimeout time.Duration `json:"page_fetch_timeout" env:"HTTP_PAGE_FETCH_TIMEOUT" default:"10s"`
}

type RateLimitConfig struct {
	// ExternalAPIInterval is the minimum spacing between outbound requests
	// to the same host.
	ExternalAPIInterval time.Duration `json:"external_api_interval" env:"RATE_LIMIT_EXTERNAL_API_INTERVAL" default:"2s"`
}

type RefreshConfig struct {
	// Interval between background refreshes of all feeds. Zero disables
	// the background job; refreshes then only happen via the API.
	Interval time.Duration `json:"interval" env:"REFRESH_INTERVAL" default:"30m"`
	// Timeout bounds one full background refresh pass.
	Timeout time.Duration `json:"timeout" env:"REFRESH_TIMEOUT" default:"10m"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

type PaginationConfig struct {
	DefaultPerPage int `json:"default_per_page" env:"PAGINATION_DEFAULT_PER_PAGE" default:"20"`
	MaxPerPage     int `json:"max_per_page" env:"PAGINATION_MAX_PER_PAGE" default:"100"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
