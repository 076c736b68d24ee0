package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderAlphaVantage, cfg.MarketData.Provider)
	assert.Equal(t, 730, cfg.MarketData.LookbackDays)
	assert.Equal(t, 20, cfg.Backtest.ShortWindow)
	assert.Equal(t, 50, cfg.Backtest.LongWindow)
	assert.Equal(t, "BACKFILL", cfg.Backtest.WarmupPolicy)
	assert.Equal(t, 30, cfg.Forecast.HorizonDays)
	assert.Equal(t, 30*time.Second, cfg.MarketData.AlphaVantage.Timeout)
	assert.False(t, cfg.Telegram.Enabled())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := `
market_data:
  provider: alpaca
  lookback_days: 365
backtest:
  max_batch_size: 5
telegram:
  bot_token: abc
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("BACKTEST_MAX_CONCURRENCY", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderAlpaca, cfg.MarketData.Provider)
	assert.Equal(t, 365, cfg.MarketData.LookbackDays)
	assert.Equal(t, 5, cfg.Backtest.MaxBatchSize)
	assert.Equal(t, 8, cfg.Backtest.MaxConcurrency)
	assert.True(t, cfg.Telegram.Enabled())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Scheduler: Scheduler{MaxConcurrency: 1},
			MarketData: MarketData{
				Provider:     ProviderAlphaVantage,
				LookbackDays: 730,
				AlphaVantage: AlphaVantage{MaxRequestPerMinute: 5},
			},
			Backtest: Backtest{ShortWindow: 20, LongWindow: 50, MaxBatchSize: 10, MaxConcurrency: 2},
			Forecast: Forecast{HorizonDays: 30},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown provider", mutate: func(c *Config) { c.MarketData.Provider = "yahoo" }, wantErr: true},
		{name: "zero lookback", mutate: func(c *Config) { c.MarketData.LookbackDays = 0 }, wantErr: true},
		{name: "zero window", mutate: func(c *Config) { c.Backtest.LongWindow = 0 }, wantErr: true},
		{name: "zero batch", mutate: func(c *Config) { c.Backtest.MaxBatchSize = 0 }, wantErr: true},
		{name: "zero horizon", mutate: func(c *Config) { c.Forecast.HorizonDays = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
