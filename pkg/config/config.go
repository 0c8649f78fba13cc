package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vvoproxy/vvoproxy/pkg/vvo"
)

// Config holds the process-wide startup configuration. It is loaded
// once and passed explicitly to the server, client and formatter.
type Config struct {
	Listen      string `yaml:"listen" validate:"required"`
	UpstreamURL string `yaml:"upstream_url" validate:"required,url"`
	Timezone    string `yaml:"timezone" validate:"required"`

	// Timeout for a single upstream call, in seconds. 0 disables it.
	UpstreamTimeout int `yaml:"upstream_timeout" validate:"gte=0"`
}

// Load builds the configuration from defaults, an optional config.yml
// and environment variable overrides.
func Load() (*Config, error) {
	cfg := &Config{
		Listen:          ":8080",
		UpstreamURL:     vvo.DefaultBaseURL,
		Timezone:        "Europe/Berlin",
		UpstreamTimeout: 10,
	}

	if data, err := os.ReadFile("config.yml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Listen = ":" + port
	}
	if listen := os.Getenv("VVO_PROXY_LISTEN"); listen != "" {
		cfg.Listen = listen
	}
	if upstreamURL := os.Getenv("VVO_PROXY_UPSTREAM_URL"); upstreamURL != "" {
		cfg.UpstreamURL = upstreamURL
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location resolves the configured target time zone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
