package config

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	CATALOG_BASE_URL=https://parallelum.com.br/fipe/api/v2
//	PRICING_BASE_URL=https://fipe.contrateumdev.com.br/api
//	PRICING_API_KEY=secret
//	HISTORY_DEFAULT_MONTHS=24
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Pricing   PricingConfig
	HTTP      HTTPConfig
	History   HistoryConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// CatalogConfig points at the FIPE taxonomy API.
type CatalogConfig struct {
	BaseURL string
}

// PricingConfig points at the pricing reference service.
//
// Fields:
//   - BaseURL: service root, paths are appended to it.
//   - APIKey: opaque pre-shared key sent in the "chave" header.
//   - RatePerSecond, Burst: client-side throttle shared by all runs.
type PricingConfig struct {
	BaseURL       string
	APIKey        string
	RatePerSecond float64
	Burst         int
}

// HTTPConfig tunes the outbound retrying client.
type HTTPConfig struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// HistoryConfig tunes price history acquisition.
type HistoryConfig struct {
	DefaultMonths int
	Parallel      int
	PeriodsTTL    time.Duration
}

// SchedulerConfig holds the cron specs (six fields, with seconds) of the
// background jobs and the idle lifetime of a session.
type SchedulerConfig struct {
	PeriodsRefreshCron string
	SessionSweepCron   string
	SessionTTL         time.Duration
}

// AppConfig is the globally accessible configuration instance, populated once
// by LoadConfig.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Invalid or missing values terminate the process through validateConfig().
func LoadConfig() {
	setDefaults()

	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("SERVER_RATE_LIMIT_PER_MIN"),
			RequestTimeout:     viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
		},
		Catalog: CatalogConfig{
			BaseURL: viper.GetString("CATALOG_BASE_URL"),
		},
		Pricing: PricingConfig{
			BaseURL:       viper.GetString("PRICING_BASE_URL"),
			APIKey:        viper.GetString("PRICING_API_KEY"),
			RatePerSecond: viper.GetFloat64("PRICING_RATE_PER_SEC"),
			Burst:         viper.GetInt("PRICING_BURST"),
		},
		HTTP: HTTPConfig{
			Timeout:      viper.GetDuration("HTTP_TIMEOUT"),
			RetryMax:     viper.GetInt("HTTP_RETRY_MAX"),
			RetryWaitMin: viper.GetDuration("HTTP_RETRY_WAIT_MIN"),
			RetryWaitMax: viper.GetDuration("HTTP_RETRY_WAIT_MAX"),
		},
		History: HistoryConfig{
			DefaultMonths: viper.GetInt("HISTORY_DEFAULT_MONTHS"),
			Parallel:      viper.GetInt("HISTORY_PARALLEL"),
			PeriodsTTL:    viper.GetDuration("PERIODS_TTL"),
		},
		Scheduler: SchedulerConfig{
			PeriodsRefreshCron: viper.GetString("PERIODS_REFRESH_CRON"),
			SessionSweepCron:   viper.GetString("SESSION_SWEEP_CRON"),
			SessionTTL:         viper.GetDuration("SESSION_TTL"),
		},
	}

	validateConfig()
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_RATE_LIMIT_PER_MIN", 120)
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("CATALOG_BASE_URL", "https://parallelum.com.br/fipe/api/v2")
	viper.SetDefault("PRICING_BASE_URL", "https://fipe.contrateumdev.com.br/api")
	viper.SetDefault("PRICING_API_KEY", "")
	viper.SetDefault("PRICING_RATE_PER_SEC", 2)
	viper.SetDefault("PRICING_BURST", 1)

	viper.SetDefault("HTTP_TIMEOUT", "15s")
	viper.SetDefault("HTTP_RETRY_MAX", 2)
	viper.SetDefault("HTTP_RETRY_WAIT_MIN", "200ms")
	viper.SetDefault("HTTP_RETRY_WAIT_MAX", "2s")

	viper.SetDefault("HISTORY_DEFAULT_MONTHS", 24)
	viper.SetDefault("HISTORY_PARALLEL", 1)
	viper.SetDefault("PERIODS_TTL", "6h")

	viper.SetDefault("PERIODS_REFRESH_CRON", "0 0 */6 * * *")
	viper.SetDefault("SESSION_SWEEP_CRON", "0 */10 * * * *")
	viper.SetDefault("SESSION_TTL", "2h")
}

// validateConfig terminates the application when problems() reports anything.
func validateConfig() {
	if bad := problems(AppConfig); len(bad) > 0 {
		log.Fatalf("invalid configuration: %v\n", bad)
	}
}

// problems lists every missing or out-of-range setting by its variable name.
func problems(c Config) []string {
	var bad []string

	if c.Server.Port == "" {
		bad = append(bad, "SERVER_PORT")
	}
	if c.Catalog.BaseURL == "" {
		bad = append(bad, "CATALOG_BASE_URL")
	}
	if c.Pricing.BaseURL == "" {
		bad = append(bad, "PRICING_BASE_URL")
	}
	if c.Pricing.Burst < 1 {
		bad = append(bad, "PRICING_BURST")
	}
	if c.HTTP.Timeout <= 0 {
		bad = append(bad, "HTTP_TIMEOUT")
	}
	if c.HTTP.RetryMax < 0 {
		bad = append(bad, "HTTP_RETRY_MAX")
	}
	if c.HTTP.RetryWaitMin > c.HTTP.RetryWaitMax {
		bad = append(bad, "HTTP_RETRY_WAIT_MIN")
	}
	if c.History.DefaultMonths < 1 {
		bad = append(bad, "HISTORY_DEFAULT_MONTHS")
	}
	if c.History.Parallel < 1 {
		bad = append(bad, "HISTORY_PARALLEL")
	}
	if c.Scheduler.SessionTTL <= 0 {
		bad = append(bad, "SESSION_TTL")
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Scheduler.PeriodsRefreshCron); err != nil {
		bad = append(bad, "PERIODS_REFRESH_CRON")
	}
	if _, err := parser.Parse(c.Scheduler.SessionSweepCron); err != nil {
		bad = append(bad, "SESSION_SWEEP_CRON")
	}
	return bad
}
