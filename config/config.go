package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Ledger sources.
const (
	LedgerSourceContract = "contract"
	LedgerSourcePostgres = "postgres"
)

var (
	ErrInvalidPageSize    = errors.New("listing.page_size must be positive")
	ErrUnknownLedger      = errors.New("ledger.source must be contract or postgres")
	ErrMissingContract    = errors.New("ledger.contract_address is required")
	ErrMissingRPCURL      = errors.New("ledger.rpc_url is required for the contract source")
	ErrMissingPostgresDSN = errors.New("ledger.postgres_dsn is required for the postgres source")
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Marketplace
	Ledger         LedgerConfig
	Listing        ListingConfig
	RateLimit      RateLimitConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type LedgerConfig struct {
	Source          string
	RPCURL          string
	ContractAddress string
	AdminAddress    string
	RetryMax        int
	RetryWaitMin    time.Duration
	RetryWaitMax    time.Duration
	Timeout         time.Duration
	PostgresDSN     string
	ConnectAttempts int
}

type ListingConfig struct {
	PageSize    int
	SessionTTL  time.Duration
	MaxSessions int
	Timezone    string
}

type RateLimitConfig struct {
	PerMin     int
	MaxClients int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Enabled reports whether calendar export is configured.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()
	return load("./config", ".", "/etc/app/")
}

func load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Ledger
	cfg.Ledger.Source = strings.ToLower(v.GetString("ledger.source"))
	cfg.Ledger.RPCURL = v.GetString("ledger.rpc_url")
	cfg.Ledger.ContractAddress = v.GetString("ledger.contract_address")
	cfg.Ledger.AdminAddress = v.GetString("ledger.admin_address")
	cfg.Ledger.RetryMax = v.GetInt("ledger.retry_max")
	cfg.Ledger.RetryWaitMin = v.GetDuration("ledger.retry_wait_min")
	cfg.Ledger.RetryWaitMax = v.GetDuration("ledger.retry_wait_max")
	cfg.Ledger.Timeout = v.GetDuration("ledger.timeout")
	cfg.Ledger.PostgresDSN = v.GetString("ledger.postgres_dsn")
	cfg.Ledger.ConnectAttempts = v.GetInt("ledger.connect_attempts")
	if dsn := v.GetString("database_url"); dsn != "" {
		cfg.Ledger.PostgresDSN = dsn
	}

	// Listing
	cfg.Listing.PageSize = v.GetInt("listing.page_size")
	cfg.Listing.SessionTTL = v.GetDuration("listing.session_ttl")
	cfg.Listing.MaxSessions = v.GetInt("listing.max_sessions")
	cfg.Listing.Timezone = v.GetString("listing.timezone")

	// Rate limit
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Listing.PageSize <= 0 {
		return ErrInvalidPageSize
	}
	if cfg.Ledger.ContractAddress == "" {
		return ErrMissingContract
	}

	switch cfg.Ledger.Source {
	case LedgerSourceContract:
		if cfg.Ledger.RPCURL == "" {
			return ErrMissingRPCURL
		}
	case LedgerSourcePostgres:
		if cfg.Ledger.PostgresDSN == "" {
			return ErrMissingPostgresDSN
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLedger, cfg.Ledger.Source)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("ledger.source", LedgerSourceContract)
	v.SetDefault("ledger.rpc_url", "http://127.0.0.1:8545")
	v.SetDefault("ledger.retry_max", 3)
	v.SetDefault("ledger.retry_wait_min", "200ms")
	v.SetDefault("ledger.retry_wait_max", "2s")
	v.SetDefault("ledger.timeout", "15s")
	v.SetDefault("ledger.connect_attempts", 5)

	v.SetDefault("listing.page_size", 10)
	v.SetDefault("listing.session_ttl", "30m")
	v.SetDefault("listing.max_sessions", 1000)
	v.SetDefault("listing.timezone", "UTC")

	v.SetDefault("rate_limit.per_min", 30)
	v.SetDefault("rate_limit.max_clients", 1000)

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}
