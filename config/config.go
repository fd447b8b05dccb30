package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task prioritizer specifics
	Prioritizer    PrioritizerConfig
	Storage        StorageConfig
	Export         ExportConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

const EnvironmentProduction = "production"

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// PrioritizerConfig holds the intake defaults used when a field is left blank.
type PrioritizerConfig struct {
	Timezone        string
	DefaultEstimate string
	DefaultDue      string
}

// CalendarTimezone returns the IANA zone name to send with calendar events,
// or "" when the zone is the host's local one.
func (c PrioritizerConfig) CalendarTimezone() string {
	if c.Timezone == "" || c.Timezone == "Local" {
		return ""
	}
	return c.Timezone
}

type StorageConfig struct {
	SQLitePath string
}

type ExportConfig struct {
	CSVPath    string
	CalendarID string
	MaxBlock   time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Task prioritizer specifics
	cfg.Prioritizer.Timezone = viper.GetString("prioritizer.timezone")
	cfg.Prioritizer.DefaultEstimate = viper.GetString("prioritizer.default_estimate")
	cfg.Prioritizer.DefaultDue = viper.GetString("prioritizer.default_due")

	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")

	cfg.Export.CSVPath = viper.GetString("export.csv_path")
	cfg.Export.CalendarID = viper.GetString("export.calendar_id")
	cfg.Export.MaxBlock = viper.GetDuration("export.max_block")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", cfg.HTTPServer.Port)
	}
	if cfg.Export.MaxBlock <= 0 {
		return fmt.Errorf("export.max_block must be positive, got %v", cfg.Export.MaxBlock)
	}
	if cfg.RateLimit.PerMin < 0 {
		return fmt.Errorf("rate_limit.per_min must not be negative, got %d", cfg.RateLimit.PerMin)
	}
	if _, err := time.LoadLocation(cfg.Prioritizer.Timezone); cfg.Prioritizer.Timezone != "" && err != nil {
		return fmt.Errorf("prioritizer.timezone: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)

	viper.SetDefault("prioritizer.timezone", "Local")
	viper.SetDefault("prioritizer.default_estimate", "20 minutes")
	viper.SetDefault("prioritizer.default_due", "in 1 year")
	viper.SetDefault("storage.sqlite_path", "tasks.db")
	viper.SetDefault("export.csv_path", "tasks.csv")
	viper.SetDefault("export.calendar_id", "primary")
	viper.SetDefault("export.max_block", "8h")
	viper.SetDefault("google_calendar.token_path", "token.json")
}
