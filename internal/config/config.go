package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	API     APIConfig
	CORS    CORSConfig
	Report  ReportConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	Environment     string
	ShutdownTimeout time.Duration
}

// APIConfig controls request handling
type APIConfig struct {
	ValidateRequests bool
}

// CORSConfig holds allowed cross-origin callers
type CORSConfig struct {
	AllowOrigins []string
}

// ReportConfig holds PDF report metadata
type ReportConfig struct {
	Title  string
	Author string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	// Set default values
	setDefaults(v)

	// Read from environment variables
	v.AutomaticEnv()

	// Bind specific environment variables
	bindEnvVars(v)

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Origins from the environment arrive comma separated, possibly padded
	cfg.CORS.AllowOrigins = splitList(strings.Join(cfg.CORS.AllowOrigins, ","))

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.shutdowntimeout", 30*time.Second)

	// API defaults
	v.SetDefault("api.validaterequests", true)
	v.SetDefault("cors.alloworigins", []string{"*"})

	// Report defaults
	v.SetDefault("report.title", "Health Pathway Report")
	v.SetDefault("report.author", "Health Pathway Advisor")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.environment", "ENV", "ENVIRONMENT")
	v.BindEnv("server.shutdowntimeout", "SHUTDOWN_TIMEOUT")

	// API
	v.BindEnv("api.validaterequests", "API_VALIDATE_REQUESTS")
	v.BindEnv("cors.alloworigins", "CORS_ALLOW_ORIGINS")

	// Report
	v.BindEnv("report.title", "REPORT_TITLE")
	v.BindEnv("report.author", "REPORT_AUTHOR")

	// Logging
	v.BindEnv("logging.level", "LOG_LEVEL")
	v.BindEnv("logging.format", "LOG_FORMAT")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdowntimeout must be positive")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be json or console")
	}

	if len(c.CORS.AllowOrigins) == 0 {
		return fmt.Errorf("cors.alloworigins must list at least one origin")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
