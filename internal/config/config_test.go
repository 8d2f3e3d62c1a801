package config_test

import (
	"os"
	"path/filepath"
	"pubapis/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_missingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 10*time.Second, cfg.APIs.Cats.Timeout)
	require.Equal(t, 20*time.Second, cfg.APIs.OpenMeteo.Timeout)
	require.Equal(t, 30*time.Second, cfg.APIs.CoinGecko.Timeout)
	require.Equal(t, 5*time.Second, cfg.APIs.HackerNews.ItemTimeout)
	require.Equal(t, []string{"usd", "inr"}, cfg.Crypto.Currencies)
	require.Len(t, cfg.Crypto.Coins, 15)
	require.Equal(t, "bitcoin", cfg.Crypto.Coins[0])
	require.Equal(t, time.Minute, cfg.Crypto.RefreshInterval)
	require.InDelta(t, 10, cfg.Crypto.AlertThreshold, 1e-9)
	require.InDelta(t, 35, cfg.Weather.HotThreshold, 1e-9)
	require.InDelta(t, 15, cfg.Weather.ColdThreshold, 1e-9)
	require.Equal(t, "worldnews", cfg.News.DefaultSubreddit)
	require.Equal(t, 10, cfg.News.RedditLimit)
	require.Equal(t, 15, cfg.News.HackerNewsLimit)
	require.Empty(t, cfg.Metrics.Addr)
	require.Equal(t, "/metrics", cfg.Metrics.Path)
	require.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
}

func TestLoad_fileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
log:
  level: info
crypto:
  coins: [bitcoin, solana]
  currencies: [eur]
  refreshInterval: 30s
news:
  defaultSubreddit: golang
`), 0o600))
	t.Setenv("NEWS_REDDIT_LIMIT", "5")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, []string{"bitcoin", "solana"}, cfg.Crypto.Coins)
	require.Equal(t, []string{"eur"}, cfg.Crypto.Currencies)
	require.Equal(t, 30*time.Second, cfg.Crypto.RefreshInterval)
	require.Equal(t, "golang", cfg.News.DefaultSubreddit)
	require.Equal(t, 5, cfg.News.RedditLimit)
	require.Equal(t, "https://www.reddit.com", cfg.APIs.Reddit.BaseURL)
}

func TestLoad_envOnly(t *testing.T) {
	t.Setenv("CRYPTO_COINS", "dogecoin,tron")
	t.Setenv("WEATHER_HOT_THRESHOLD", "30")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, []string{"dogecoin", "tron"}, cfg.Crypto.Coins)
	require.InDelta(t, 30, cfg.Weather.HotThreshold, 1e-9)
}

func TestLoad_invalid(t *testing.T) {
	t.Setenv("WEATHER_COLD_THRESHOLD", "40")

	_, err := config.Load("")
	require.ErrorContains(t, err, "coldThreshold")
}

func TestLoad_malformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("crypto: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
