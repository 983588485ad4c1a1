package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Secrets never live in the TOML file, they come from the environment only.
type Secrets struct {
	// clients send it in the X-Progress-Token header
	APIToken         string `env:"PROGRESS_API_TOKEN"`
	RedisPassword    string `env:"PROGRESS_REDIS_PASS"`
	SentryDSN        string `env:"SENTRY_DSN"`
	AdviceAPIKey     string `env:"ADVICE_API_KEY"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=player-progress"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	return loadSecrets(ctx, envconfig.OsLookuper())
}

func loadSecrets(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &s, nil
}

// Missing lists the env vars that are empty but needed for a fully working service.
func (s *Secrets) Missing() []string {
	var missing []string
	if s.APIToken == "" {
		missing = append(missing, "PROGRESS_API_TOKEN")
	}
	if s.AdviceAPIKey == "" {
		missing = append(missing, "ADVICE_API_KEY")
	}
	if s.HoneycombEnabled && s.HoneycombAPIKey == "" {
		missing = append(missing, "HONEYCOMB_API_KEY")
	}
	return missing
}
