package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/2beens/playerprogress/pkg"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// postgres, max conns 0 keeps the pgxpool default
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// dashboard
	SummaryCacheTTL time.Duration `toml:"summary_cache_ttl"`
	LoadTimeout     time.Duration `toml:"load_timeout"`

	// advice service
	AdviceBaseURL         string        `toml:"advice_base_url"`
	AdviceTimeout         time.Duration `toml:"advice_timeout"`
	AdviceCacheSizeMB     int           `toml:"advice_cache_size_mb"`
	AdviceCacheTTL        time.Duration `toml:"advice_cache_ttl"`
	AdviceRateLimitPerMin int           `toml:"advice_rate_limit_per_min"`

	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		env = "development"
	case "prod", "production":
		cfg = t.Production
		env = "production"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = env
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env with defaults applied.
func Load(env, path string) (*Config, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return nil, fmt.Errorf("check config path: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("config file [%s] not found", path)
	}

	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config for %s: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SummaryCacheTTL == 0 {
		c.SummaryCacheTTL = time.Hour
	}
	if c.LoadTimeout == 0 {
		c.LoadTimeout = 10 * time.Second
	}
	if c.AdviceTimeout == 0 {
		c.AdviceTimeout = 15 * time.Second
	}
	if c.AdviceCacheSizeMB == 0 {
		c.AdviceCacheSizeMB = 10
	}
	if c.AdviceCacheTTL == 0 {
		c.AdviceCacheTTL = 30 * time.Minute
	}
	if c.AdviceRateLimitPerMin == 0 {
		c.AdviceRateLimitPerMin = 10
	}
}

func (c *Config) validate() error {
	var err error
	if c.Port <= 0 {
		err = multierr.Append(err, errors.New("port must be set"))
	}
	if c.PostgresHost == "" || c.PostgresDBName == "" {
		err = multierr.Append(err, errors.New("postgres host and db name must be set"))
	}
	if c.PostgresMaxConns < 0 {
		err = multierr.Append(err, errors.New("postgres max conns cannot be negative"))
	}
	if c.RedisHost == "" {
		err = multierr.Append(err, errors.New("redis host must be set"))
	}
	return err
}
