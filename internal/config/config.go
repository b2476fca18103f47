package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	API       APIConfig       `yaml:"api"`
	Session   SessionConfig   `yaml:"session"`
	Upload    UploadConfig    `yaml:"upload"`
	Log       LogConfig       `yaml:"log"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// APIConfig contains HES Vault backend API settings
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	ImageBaseURL   string `yaml:"image_base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SessionConfig contains browser session settings
type SessionConfig struct {
	CookieName    string `yaml:"cookie_name"`
	TTLMinutes    int    `yaml:"ttl_minutes"`
	SecureCookies bool   `yaml:"secure_cookies"`
}

// UploadConfig contains file upload settings
type UploadConfig struct {
	MaxFileSizeMB int64    `yaml:"max_file_size_mb"`
	AllowedTypes  []string `yaml:"allowed_types"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// DashboardConfig contains dashboard cache settings
type DashboardConfig struct {
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	CleanupSessions string `yaml:"cleanup_sessions"`
	PruneDashboards string `yaml:"prune_dashboards"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// Pick up a local .env before reading the environment
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("HESVAULT_API_URL"); val != "" {
		c.API.BaseURL = val
	}
	if val := os.Getenv("HESVAULT_IMAGE_URL"); val != "" {
		c.API.ImageBaseURL = val
	}
	if val := os.Getenv("HESVAULT_API_TIMEOUT_SECONDS"); val != "" {
		fmt.Sscanf(val, "%d", &c.API.TimeoutSeconds)
	}

	if val := os.Getenv("SESSION_COOKIE_NAME"); val != "" {
		c.Session.CookieName = val
	}
	if val := os.Getenv("SESSION_TTL_MINUTES"); val != "" {
		fmt.Sscanf(val, "%d", &c.Session.TTLMinutes)
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("api base_url is required")
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.ImageBaseURL == "" {
		c.API.ImageBaseURL = c.API.BaseURL
	}
	c.API.ImageBaseURL = strings.TrimRight(c.API.ImageBaseURL, "/")
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 30
	}

	// Session defaults
	if c.Session.CookieName == "" {
		c.Session.CookieName = "hes_vault_session"
	}
	if c.Session.TTLMinutes <= 0 {
		c.Session.TTLMinutes = 12 * 60
	}

	// Upload defaults: the API rejects anything over 5 MB anyway
	if c.Upload.MaxFileSizeMB <= 0 {
		c.Upload.MaxFileSizeMB = 5
	}
	if len(c.Upload.AllowedTypes) == 0 {
		c.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Dashboard defaults
	if c.Dashboard.CacheTTLSeconds <= 0 {
		c.Dashboard.CacheTTLSeconds = 120
	}

	// Scheduler defaults
	if c.Scheduler.CleanupSessions == "" {
		c.Scheduler.CleanupSessions = "0 */10 * * * *" // every 10 minutes
	}
	if c.Scheduler.PruneDashboards == "" {
		c.Scheduler.PruneDashboards = "0 */5 * * * *" // every 5 minutes
	}

	return nil
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// APITimeout returns the backend request timeout as a duration
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// SessionTTL returns the browser session lifetime as a duration
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// MaxUploadBytes returns the client-side upload cap in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.Upload.MaxFileSizeMB << 20
}

// DashboardTTL returns how long a cached dashboard stays fresh
func (c *Config) DashboardTTL() time.Duration {
	return time.Duration(c.Dashboard.CacheTTLSeconds) * time.Second
}
