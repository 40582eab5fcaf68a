package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	JWT       JWTConfig       `yaml:"jwt"`
	MPesa     MPesaConfig     `yaml:"mpesa"`
	Log       LogConfig       `yaml:"log"`
	Booking   BookingConfig   `yaml:"booking"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	BaseURL string `yaml:"base_url"` // Used in links sent by email
}

// DatabaseConfig contains MongoDB connection settings
type DatabaseConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// SMTPConfig contains email service settings
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// JWTConfig contains token settings
type JWTConfig struct {
	Secret             string `yaml:"secret"`
	SessionTokenExpiry int    `yaml:"session_token_expiry_minutes"`
	ResetTokenExpiry   int    `yaml:"reset_token_expiry_minutes"`
}

// MPesaConfig contains payment provider settings
type MPesaConfig struct {
	BaseURL        string `yaml:"base_url"`
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`
	Shortcode      string `yaml:"shortcode"`
	Passkey        string `yaml:"passkey"`
	CallbackURL    string `yaml:"callback_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// BookingConfig contains booking workflow settings
type BookingConfig struct {
	PendingExpiryHours int `yaml:"pending_expiry_hours"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ExpireStaleBookings string `yaml:"expire_stale_bookings"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("MONGO_URI"); val != "" {
		c.Database.URI = val
	}
	if val := os.Getenv("MONGO_DATABASE"); val != "" {
		c.Database.Database = val
	}

	// SMTP
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}
	if val := os.Getenv("SMTP_FROM"); val != "" {
		c.SMTP.From = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// M-Pesa
	if val := os.Getenv("MPESA_CONSUMER_KEY"); val != "" {
		c.MPesa.ConsumerKey = val
	}
	if val := os.Getenv("MPESA_CONSUMER_SECRET"); val != "" {
		c.MPesa.ConsumerSecret = val
	}
	if val := os.Getenv("MPESA_SHORTCODE"); val != "" {
		c.MPesa.Shortcode = val
	}
	if val := os.Getenv("MPESA_PASSKEY"); val != "" {
		c.MPesa.Passkey = val
	}
	if val := os.Getenv("MPESA_CALLBACK_URL"); val != "" {
		c.MPesa.CallbackURL = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("SERVER_BASE_URL"); val != "" {
		c.Server.BaseURL = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = fmt.Sprintf("http://%s", c.GetServerAddress())
	}

	// Database validation
	if c.Database.URI == "" {
		return fmt.Errorf("database uri is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// SMTP validation
	if c.SMTP.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTP.Port)
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.SessionTokenExpiry == 0 {
		c.JWT.SessionTokenExpiry = 60 // 1 hour
	}
	if c.JWT.ResetTokenExpiry == 0 {
		c.JWT.ResetTokenExpiry = 60 // 1 hour
	}

	// M-Pesa validation
	if c.MPesa.BaseURL == "" {
		return fmt.Errorf("mpesa base url is required")
	}
	if c.MPesa.ConsumerKey == "" || c.MPesa.ConsumerSecret == "" {
		return fmt.Errorf("mpesa consumer credentials are required")
	}
	if c.MPesa.Shortcode == "" || c.MPesa.Passkey == "" {
		return fmt.Errorf("mpesa shortcode and passkey are required")
	}
	if c.MPesa.CallbackURL == "" {
		return fmt.Errorf("mpesa callback url is required")
	}
	if c.MPesa.TimeoutSeconds == 0 {
		c.MPesa.TimeoutSeconds = 30
	}

	// Booking defaults
	if c.Booking.PendingExpiryHours == 0 {
		c.Booking.PendingExpiryHours = 24
	}

	// Scheduler defaults
	if c.Scheduler.ExpireStaleBookings == "" {
		c.Scheduler.ExpireStaleBookings = "0 0 1 * * *" // 1 AM UTC
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
