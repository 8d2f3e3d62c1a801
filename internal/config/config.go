package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains the logging setup, the shared HTTP client settings, one section
// per public API and the settings of the individual tools.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	Log struct {
		// Level overrides the environment's default log level (debug, info, warn, error)
		Level string `env:"LOG_LEVEL" env-default:"warn" yaml:"level"`
	} `yaml:"log"`

	// HTTP contains the outbound HTTP client configuration shared by all APIs
	HTTP struct {
		// UserAgent is sent with every request; reddit rejects requests without one
		UserAgent string `env:"HTTP_USER_AGENT" env-default:"pubapis/1.0 (+https://github.com/pubapis)" yaml:"userAgent"`
		// Timeout applies to APIs without their own timeout
		Timeout time.Duration `env:"HTTP_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"http"`

	APIs struct {
		Cats struct {
			ImagesURL string        `env:"CATS_IMAGES_URL" env-default:"https://api.thecatapi.com/v1/images/search" yaml:"imagesURL"`
			FactURL   string        `env:"CATS_FACT_URL" env-default:"https://catfact.ninja/fact" yaml:"factURL"`
			Timeout   time.Duration `env:"CATS_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"cats"`
		Dogs struct {
			ImageURL string        `env:"DOGS_IMAGE_URL" env-default:"https://dog.ceo/api/breeds/image/random" yaml:"imageURL"`
			FactsURL string        `env:"DOGS_FACTS_URL" env-default:"https://dogapi.dog/api/v2/facts" yaml:"factsURL"`
			Timeout  time.Duration `env:"DOGS_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"dogs"`
		OpenMeteo struct {
			GeocodingURL string        `env:"OPEN_METEO_GEOCODING_URL" env-default:"https://geocoding-api.open-meteo.com/v1/search" yaml:"geocodingURL"` //nolint: lll
			ForecastURL  string        `env:"OPEN_METEO_FORECAST_URL" env-default:"https://api.open-meteo.com/v1/forecast" yaml:"forecastURL"`
			Timeout      time.Duration `env:"OPEN_METEO_TIMEOUT" env-default:"20s" yaml:"timeout"`
		} `yaml:"openMeteo"`
		Jokes struct {
			URL     string        `env:"JOKES_URL" env-default:"https://official-joke-api.appspot.com/random_joke" yaml:"url"`
			Timeout time.Duration `env:"JOKES_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"jokes"`
		CoinGecko struct {
			BaseURL string        `env:"COINGECKO_BASE_URL" env-default:"https://api.coingecko.com/api/v3" yaml:"baseURL"`
			Timeout time.Duration `env:"COINGECKO_TIMEOUT" env-default:"30s" yaml:"timeout"`
		} `yaml:"coinGecko"`
		Reddit struct {
			BaseURL string        `env:"REDDIT_BASE_URL" env-default:"https://www.reddit.com" yaml:"baseURL"`
			Timeout time.Duration `env:"REDDIT_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"reddit"`
		HackerNews struct {
			BaseURL     string        `env:"HACKER_NEWS_BASE_URL" env-default:"https://hacker-news.firebaseio.com/v0" yaml:"baseURL"`
			Timeout     time.Duration `env:"HACKER_NEWS_TIMEOUT" env-default:"10s" yaml:"timeout"`
			ItemTimeout time.Duration `env:"HACKER_NEWS_ITEM_TIMEOUT" env-default:"5s" yaml:"itemTimeout"`
		} `yaml:"hackerNews"`
	} `yaml:"apis"`

	Crypto struct {
		// Coins is the watch list of the price board and tracker
		Coins []string `env:"CRYPTO_COINS" env-default:"bitcoin,ethereum,cardano,solana,dogecoin,shiba-inu,polygon,ripple,litecoin,polkadot,chainlink,stellar,tron,avalanche-2,uniswap" env-separator:"," yaml:"coins"` //nolint: lll
		// Currencies are the quote currencies; the first one drives trends and alerts
		Currencies []string `env:"CRYPTO_CURRENCIES" env-default:"usd,inr" env-separator:"," yaml:"currencies"`
		// RefreshInterval is the live tracker period
		RefreshInterval time.Duration `env:"CRYPTO_REFRESH_INTERVAL" env-default:"60s" yaml:"refreshInterval"`
		// AlertThreshold is the absolute 24h change, in percent, that raises an alert
		AlertThreshold float64 `env:"CRYPTO_ALERT_THRESHOLD" env-default:"10" yaml:"alertThreshold"`
		// HistoryRetention is how long recorded prices are kept; zero keeps them forever
		HistoryRetention time.Duration `env:"CRYPTO_HISTORY_RETENTION" env-default:"720h" yaml:"historyRetention"`
	} `yaml:"crypto"`

	Weather struct {
		// HotThreshold raises the heat alert above this temperature (°C)
		HotThreshold float64 `env:"WEATHER_HOT_THRESHOLD" env-default:"35" yaml:"hotThreshold"`
		// ColdThreshold raises the cold alert below this temperature (°C)
		ColdThreshold float64 `env:"WEATHER_COLD_THRESHOLD" env-default:"15" yaml:"coldThreshold"`
	} `yaml:"weather"`

	News struct {
		DefaultSubreddit string `env:"NEWS_DEFAULT_SUBREDDIT" env-default:"worldnews" yaml:"defaultSubreddit"`
		RedditLimit      int    `env:"NEWS_REDDIT_LIMIT" env-default:"10" yaml:"redditLimit"`
		HackerNewsLimit  int    `env:"NEWS_HACKER_NEWS_LIMIT" env-default:"15" yaml:"hackerNewsLimit"`
	} `yaml:"news"`

	// Metrics configures the optional Prometheus endpoint of the live tracker
	Metrics struct {
		// Addr is the listen address; empty disables the endpoint
		Addr string `env:"METRICS_ADDR" yaml:"addr"`
		// Path defines the URL path where metrics are exposed
		Path string `env:"METRICS_PATH" env-default:"/metrics" yaml:"path"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"METRICS_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
	} `yaml:"metrics"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"pubapis" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"4" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"1" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// ConnectTimeout bounds dialing and the startup ping
		ConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT" env-default:"5s" yaml:"connectTimeout"`
	} `yaml:"database"`

	// GracefulShutdownTimeout bounds the shutdown of the metrics server
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: the configuration then comes from the
// environment and the defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	switch {
	case configPath == "" || errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("could not stat config file: %w", err)
	default:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the tools cannot run with.
func (c *Config) Validate() error {
	switch {
	case len(c.Crypto.Coins) == 0:
		return errors.New("crypto.coins must list at least one coin")
	case len(c.Crypto.Currencies) == 0:
		return errors.New("crypto.currencies must list at least one currency")
	case c.Crypto.RefreshInterval <= 0:
		return fmt.Errorf("crypto.refreshInterval must be positive, got %s", c.Crypto.RefreshInterval)
	case c.Crypto.AlertThreshold < 0:
		return fmt.Errorf("crypto.alertThreshold must not be negative, got %v", c.Crypto.AlertThreshold)
	case c.Weather.ColdThreshold > c.Weather.HotThreshold:
		return fmt.Errorf("weather.coldThreshold (%v) is above weather.hotThreshold (%v)",
			c.Weather.ColdThreshold, c.Weather.HotThreshold)
	case c.News.RedditLimit <= 0 || c.News.HackerNewsLimit <= 0:
		return errors.New("news limits must be positive")
	}

	return nil
}
