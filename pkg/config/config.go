package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	defaultPort             = "8000"
	defaultRateLimit        = 100
	defaultConcurrencyLimit = 10
	defaultMaxUploadBytes   = 10 << 20
	defaultLogLevel         = "info"
	defaultOrigin           = "https://file-compare-frontend.vercel.app"
)

type Config struct {
	SrvPort          string `yaml:"srv_port"`
	RateLimit        int    `yaml:"rate_limit"`
	ConcurrencyLimit int    `yaml:"concurrency_limit"`
	MaxUploadBytes   int64  `yaml:"max_upload_bytes"`
	LogLevel         string `yaml:"log_level"`
	// empty secret leaves /compare open
	JWTSecret string `yaml:"jwt_secret"`
	CORS      CORS   `yaml:"cors"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

func Load(path string) (*Config, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	c := &Config{}
	err = yaml.Unmarshal(yamlFile, c)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	c.SetDefaults()

	return c, nil
}

// SetDefaults fills every zero field with its default value.
func (c *Config) SetDefaults() {
	if c.SrvPort == "" {
		c.SrvPort = defaultPort
	}
	if c.RateLimit <= 0 {
		c.RateLimit = defaultRateLimit
	}
	if c.ConcurrencyLimit <= 0 {
		c.ConcurrencyLimit = defaultConcurrencyLimit
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = defaultMaxUploadBytes
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{defaultOrigin}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Content-Type"}
	}
}
