package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Settings journal database configuration"`
	UI       UIConfig       `yaml:"ui" json:"ui" jsonschema:"description=UI pages configuration"`
	Gateway  GatewayConfig  `yaml:"gateway" json:"gateway" jsonschema:"description=Initial Agent Gateway settings applied at startup"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds settings journal database settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:agentui?mode=memory&cache=shared,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=1,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=1,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=0,description=Connection maximum lifetime in seconds (0 keeps connections forever)"`
}

// UIConfig holds settings of the rendered pages
type UIConfig struct {
	Subtitle       string        `yaml:"subtitle" json:"subtitle" jsonschema:"description=Subtitle shown on the agents page"`
	ClusterSamples int           `yaml:"cluster_samples" json:"cluster_samples" jsonschema:"default=24,minimum=2,maximum=288,description=Points per cluster metric series"`
	ClusterStep    time.Duration `yaml:"cluster_step" json:"cluster_step" jsonschema:"default=5m,description=Interval between cluster metric points"`
}

// GatewayConfig overrides the built-in Agent Gateway defaults, empty values keep the built-in ones
type GatewayConfig struct {
	Enabled     bool   `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable the gateway on startup"`
	Title       string `yaml:"title" json:"title" jsonschema:"description=Gateway title"`
	Description string `yaml:"description" json:"description" jsonschema:"description=Gateway description"`
	ThemeColor  string `yaml:"theme_color" json:"theme_color" jsonschema:"description=Gateway theme color"`
	PublicURL   string `yaml:"public_url" json:"public_url" jsonschema:"description=Public gateway URL"`
	AuthMode    string `yaml:"auth_mode" json:"auth_mode" jsonschema:"enum=none,enum=token,enum=oauth,description=Client authentication mode"`
}

// Default returns configuration with all defaults set, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// schema validation is supplementary, don't fail
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:agentui?mode=memory&cache=shared"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 1
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 1
	}

	if cfg.UI.ClusterSamples == 0 {
		cfg.UI.ClusterSamples = 24
	}
	if cfg.UI.ClusterStep == 0 {
		cfg.UI.ClusterStep = 5 * time.Minute
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database connection limits must be non-negative")
	}
	if cfg.Database.ConnMaxLifetime < 0 {
		return fmt.Errorf("database.conn_max_lifetime must be non-negative")
	}
	if cfg.UI.ClusterSamples < 2 || cfg.UI.ClusterSamples > 288 {
		return fmt.Errorf("ui.cluster_samples must be between 2 and 288")
	}
	if cfg.UI.ClusterStep < time.Second {
		return fmt.Errorf("ui.cluster_step must be at least 1 second")
	}
	switch cfg.Gateway.AuthMode {
	case "", "none", "token", "oauth":
	default:
		return fmt.Errorf("gateway.auth_mode must be one of none, token, oauth, got %q", cfg.Gateway.AuthMode)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetUIConfig returns pages configuration
func (c *Config) GetUIConfig() UIConfig {
	return c.UI
}
