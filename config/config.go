package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log        Logger         `mapstructure:"logger"`
	DB         Database       `mapstructure:"database"`
	API        API            `mapstructure:"api"`
	Scheduler  Scheduler      `mapstructure:"scheduler"`
	Cache      Cache          `mapstructure:"cache"`
	MarketData MarketData     `mapstructure:"market_data"`
	Backtest   Backtest       `mapstructure:"backtest"`
	Forecast   Forecast       `mapstructure:"forecast"`
	Telegram   TelegramConfig `mapstructure:"telegram"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type Scheduler struct {
	MaxConcurrency  int           `mapstructure:"max_concurrency"`
	TimeoutDuration time.Duration `mapstructure:"timeout_duration"`
}

type API struct {
	Port              int           `mapstructure:"port"`
	RateLimitPerSec   float64       `mapstructure:"rate_limit_per_sec"`
	RateLimitBurst    int           `mapstructure:"rate_limit_burst"`
	RateLimitExpireIn time.Duration `mapstructure:"rate_limit_expire_in"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
	PriceSeriesTTL    time.Duration `mapstructure:"price_series_ttl"`
}

type MarketData struct {
	Provider     string       `mapstructure:"provider"`
	LookbackDays int          `mapstructure:"lookback_days"`
	ArchiveDir   string       `mapstructure:"archive_dir"`
	AlphaVantage AlphaVantage `mapstructure:"alpha_vantage"`
	Alpaca       Alpaca       `mapstructure:"alpaca"`
}

type AlphaVantage struct {
	BaseURL             string        `mapstructure:"base_url"`
	APIKey              string        `mapstructure:"api_key"`
	Timeout             time.Duration `mapstructure:"timeout"`
	OutputSize          string        `mapstructure:"output_size"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

type Alpaca struct {
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
	BaseURL   string `mapstructure:"base_url"`
	Feed      string `mapstructure:"feed"`
}

type Backtest struct {
	ShortWindow    int    `mapstructure:"short_window"`
	LongWindow     int    `mapstructure:"long_window"`
	WarmupPolicy   string `mapstructure:"warmup_policy"`
	MaxBatchSize   int    `mapstructure:"max_batch_size"`
	MaxConcurrency int    `mapstructure:"max_concurrency"`
	HistoryLimit   int    `mapstructure:"history_limit"`
}

type Forecast struct {
	ModelType   string `mapstructure:"model_type"`
	ModelPath   string `mapstructure:"model_path"`
	HorizonDays int    `mapstructure:"horizon_days"`
	MaxDepth    int    `mapstructure:"max_depth"`
}

type TelegramConfig struct {
	BotToken                  string        `mapstructure:"bot_token"`
	WebhookURL                string        `mapstructure:"webhook_url"`
	TimeoutDuration           time.Duration `mapstructure:"timeout_duration"`
	MaxGlobalRequestPerSecond int           `mapstructure:"max_global_request_per_second"`
	MaxChatRequestPerSecond   int           `mapstructure:"max_chat_request_per_second"`
}

// Enabled reports whether a bot token has been configured.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.log_level", "Warn")

	v.SetDefault("api.port", 8080)
	v.SetDefault("api.rate_limit_per_sec", 10)
	v.SetDefault("api.rate_limit_burst", 30)
	v.SetDefault("api.rate_limit_expire_in", 3*time.Minute)

	v.SetDefault("scheduler.max_concurrency", 2)
	v.SetDefault("scheduler.timeout_duration", 10*time.Minute)

	v.SetDefault("cache.default_expiration", 10*time.Minute)
	v.SetDefault("cache.cleanup_interval", 15*time.Minute)
	v.SetDefault("cache.price_series_ttl", 30*time.Minute)

	v.SetDefault("market_data.provider", "alpha_vantage")
	v.SetDefault("market_data.lookback_days", 730)
	v.SetDefault("market_data.alpha_vantage.base_url", "https://www.alphavantage.co")
	v.SetDefault("market_data.alpha_vantage.timeout", 30*time.Second)
	v.SetDefault("market_data.alpha_vantage.output_size", "full")
	v.SetDefault("market_data.alpha_vantage.max_request_per_minute", 5)
	v.SetDefault("market_data.alpaca.feed", "iex")

	v.SetDefault("backtest.short_window", 20)
	v.SetDefault("backtest.long_window", 50)
	v.SetDefault("backtest.warmup_policy", "BACKFILL")
	v.SetDefault("backtest.max_batch_size", 20)
	v.SetDefault("backtest.max_concurrency", 4)
	v.SetDefault("backtest.history_limit", 20)

	v.SetDefault("forecast.model_type", "linear")
	v.SetDefault("forecast.horizon_days", 30)
	v.SetDefault("forecast.max_depth", 6)

	v.SetDefault("telegram.timeout_duration", 2*time.Minute)
	v.SetDefault("telegram.max_global_request_per_second", 30)
	v.SetDefault("telegram.max_chat_request_per_second", 1)
}

// Load reads .env (if any), config.yaml from the working directory and the
// environment, in increasing priority.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the services cannot start with.
func (c *Config) Validate() error {
	switch c.MarketData.Provider {
	case ProviderAlphaVantage, ProviderAlpaca:
	default:
		return fmt.Errorf("unsupported market_data.provider %q", c.MarketData.Provider)
	}
	if c.MarketData.LookbackDays <= 0 {
		return fmt.Errorf("market_data.lookback_days must be positive")
	}
	if c.MarketData.AlphaVantage.MaxRequestPerMinute <= 0 {
		return fmt.Errorf("market_data.alpha_vantage.max_request_per_minute must be positive")
	}
	if c.Backtest.ShortWindow <= 0 || c.Backtest.LongWindow <= 0 {
		return fmt.Errorf("backtest windows must be positive")
	}
	if c.Backtest.MaxBatchSize <= 0 || c.Backtest.MaxConcurrency <= 0 {
		return fmt.Errorf("backtest.max_batch_size and backtest.max_concurrency must be positive")
	}
	if c.Scheduler.MaxConcurrency <= 0 {
		return fmt.Errorf("scheduler.max_concurrency must be positive")
	}
	if c.Forecast.HorizonDays <= 0 {
		return fmt.Errorf("forecast.horizon_days must be positive")
	}
	return nil
}

const (
	ProviderAlphaVantage = "alpha_vantage"
	ProviderAlpaca       = "alpaca"
)
