package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap/zapcore"
)

const (
	// CatalogSourceFile loads the catalog from a JSON file.
	CatalogSourceFile = "file"
	// CatalogSourcePostgres loads the catalog from the candidates table.
	CatalogSourcePostgres = "postgres"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// catalog loading, recommendation caching, lead forwarding and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes caps the size of request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"65536" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed to call the API from a browser
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" yaml:"allowedOrigins"`
		// RateLimit bounds scoring requests per client IP
		RateLimit struct {
			// Requests is the number of requests allowed per window; a negative value disables the limit
			Requests int `env:"HTTP_RATE_LIMIT_REQUESTS" env-default:"60" yaml:"requests"`
			// Window is the rate limit window
			Window time.Duration `env:"HTTP_RATE_LIMIT_WINDOW" env-default:"1m" yaml:"window"`
		} `yaml:"rateLimit"`
	} `yaml:"http"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"advisor" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Catalog configures where the reference candidates are loaded from
	Catalog struct {
		// Source is either "file" or "postgres"
		Source string `env:"CATALOG_SOURCE" env-default:"file" yaml:"source"`
		// Path is the JSON catalog file used by the file source
		Path string `env:"CATALOG_PATH" env-default:"data/blockchain-data.json" yaml:"path"`
		// RefreshInterval is how long a loaded catalog snapshot is served before reloading
		RefreshInterval time.Duration `env:"CATALOG_REFRESH_INTERVAL" env-default:"5m" yaml:"refreshInterval"`
	} `yaml:"catalog"`

	// Recommend configures the scoring engine
	Recommend struct {
		// Limit is the number of recommendations returned per request
		Limit int `env:"RECOMMEND_LIMIT" env-default:"3" yaml:"limit"`
		// PromotionsDisabled turns off the pinned partner placements
		PromotionsDisabled bool `env:"RECOMMEND_PROMOTIONS_DISABLED" yaml:"promotionsDisabled"`
	} `yaml:"recommend"`

	// Cache configures the redis recommendation cache
	Cache struct {
		// Enabled turns the cache on
		Enabled bool `env:"CACHE_ENABLED" env-default:"false" yaml:"enabled"`
		// Addr is the redis host:port
		Addr string `env:"CACHE_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for redis authentication
		Password string `env:"CACHE_PASSWORD" yaml:"password"`
		// DB is the redis logical database
		DB int `env:"CACHE_DB" env-default:"0" yaml:"db"`
		// TTL is how long a cached recommendation list is kept
		TTL time.Duration `env:"CACHE_TTL" env-default:"10m" yaml:"ttl"`
	} `yaml:"cache"`

	// Leads configures lead capture and CRM forwarding
	Leads struct {
		// Enabled stores submissions and forwards them to the CRM; requires postgres
		Enabled bool `env:"LEADS_ENABLED" env-default:"false" yaml:"enabled"`
		// WebhookURL is the CRM endpoint leads are POSTed to
		WebhookURL string `env:"LEADS_WEBHOOK_URL" yaml:"webhookURL"`
		// Token is sent as a bearer token to the CRM
		Token string `env:"LEADS_TOKEN" yaml:"token"`
		// Timeout bounds a single CRM request
		Timeout time.Duration `env:"LEADS_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// MaxAttempts is the maximum number of delivery attempts per lead
		MaxAttempts int `env:"LEADS_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// Workers is the number of concurrent delivery workers
		Workers int `env:"LEADS_WORKERS" env-default:"10" yaml:"workers"`
		// JobTimeout bounds a single delivery job, including rate limit waits
		JobTimeout time.Duration `env:"LEADS_JOB_TIMEOUT" env-default:"2m" yaml:"jobTimeout"`
	} `yaml:"leads"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Validate checks cross-field constraints that tags cannot express.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceFile, CatalogSourcePostgres:
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	if c.Recommend.Limit < 1 {
		return fmt.Errorf("recommend limit must be positive, got %d", c.Recommend.Limit)
	}
	if c.Leads.Enabled && c.Leads.WebhookURL == "" {
		return fmt.Errorf("leads are enabled but no webhook URL is configured")
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
