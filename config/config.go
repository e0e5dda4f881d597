package config

import (
	"fmt"
	"os"
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
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Storage
	Postgres PostgresConfig

	// Auth
	JWT JWTConfig

	// Nurse Manager specifics
	Copilot        CopilotConfig
	Roster         RosterConfig
	SendGrid       SendGridConfig
	GoogleCalendar GoogleCalendarConfig

	// LLM Provider Abstraction (optional)
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

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

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migrate         bool
}

type JWTConfig struct {
	Secret        string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type CopilotConfig struct {
	SystemName    string
	Timezone      string
	RulesPath     string // optional override of the embedded phrase catalogue
	DefaultUserID int64
}

type RosterConfig struct {
	ScheduleMonth string // YYYY-MM; empty means the current month
}

// Month returns the first day of the scheduled month, falling back to the
// month containing now.
func (c RosterConfig) Month(now time.Time) time.Time {
	if m, err := time.Parse("2006-01", c.ScheduleMonth); err == nil {
		return m
	}
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
	BaseURL   string
}

type GoogleCalendarConfig struct {
	CredentialsPath string // empty disables the calendar mirror
	TokenPath       string // OAuth token for desktop-app credentials
	CalendarID      string
	Timezone        string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
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

	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.CORS.AllowCredentials = viper.GetBool("cors.allow_credentials")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.DSN = dbURL
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.Migrate = viper.GetBool("postgres.migrate")

	// JWT
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}
	cfg.JWT.RefreshSecret = viper.GetString("jwt.refresh_secret")
	if secret := viper.GetString("jwt_refresh_secret"); secret != "" {
		cfg.JWT.RefreshSecret = secret
	}
	cfg.JWT.AccessTTL = viper.GetDuration("jwt.access_ttl")
	cfg.JWT.RefreshTTL = viper.GetDuration("jwt.refresh_ttl")

	// Copilot
	cfg.Copilot.SystemName = viper.GetString("copilot.system_name")
	cfg.Copilot.Timezone = viper.GetString("copilot.timezone")
	cfg.Copilot.RulesPath = viper.GetString("copilot.rules_path")
	cfg.Copilot.DefaultUserID = viper.GetInt64("copilot.default_user_id")

	cfg.Roster.ScheduleMonth = viper.GetString("roster.schedule_month")

	// SendGrid
	cfg.SendGrid.APIKey = viper.GetString("sendgrid.api_key")
	if key := viper.GetString("sendgrid_api_key"); key != "" {
		cfg.SendGrid.APIKey = key
	}
	cfg.SendGrid.FromEmail = viper.GetString("sendgrid.from_email")
	cfg.SendGrid.FromName = viper.GetString("sendgrid.from_name")
	cfg.SendGrid.BaseURL = viper.GetString("sendgrid.base_url")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	if c.Roster.ScheduleMonth != "" {
		if _, err := time.Parse("2006-01", c.Roster.ScheduleMonth); err != nil {
			return fmt.Errorf("roster.schedule_month must be YYYY-MM: %w", err)
		}
	}
	// The copilot works without a model; providers are only validated when present.
	if len(c.LLM.Providers) > 0 {
		if err := ValidateLLMConfig(&c.LLM); err != nil {
			return err
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("cors.allow_credentials", false)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_minute", 120)
	viper.SetDefault("rate_limit.burst", 20)

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("postgres.migrate", true)

	viper.SetDefault("jwt.access_ttl", "15m")
	viper.SetDefault("jwt.refresh_ttl", "168h")

	viper.SetDefault("copilot.system_name", "Nuvanta")
	viper.SetDefault("copilot.timezone", "UTC")
	viper.SetDefault("copilot.default_user_id", 1)

	viper.SetDefault("sendgrid.from_email", "nuvanta@healthcare.org")
	viper.SetDefault("sendgrid.from_name", "Nuvanta Nurse Manager")
	viper.SetDefault("sendgrid.base_url", "https://api.sendgrid.com")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.timezone", "UTC")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// splitList splits a comma separated env/config value, since viper does not
// parse arrays from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// ValidateLLMConfig validates the LLM configuration.
func ValidateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
