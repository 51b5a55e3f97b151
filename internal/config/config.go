// Package config reads all process configuration once at startup. Credentials
// live here, not in package-level state: the GitHub client and the model
// client both receive their tokens explicitly.
package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// GitHubToken authenticates every GitHub API request. Required: requests
	// without it are silently rate-limited rather than rejected outright.
	GitHubToken string `env:"GITHUB_TOKEN,required"`

	// AnthropicAPIKey authenticates the model collaborator.
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY,required"`

	Model     string `env:"REPOAGENT_MODEL,default=claude-3-7-sonnet-latest"`
	MaxTokens int64  `env:"REPOAGENT_MAX_TOKENS,default=1024"`

	// TokenBudget caps the estimated tokens replayed to the model each step.
	// Zero keeps the full history.
	TokenBudget int `env:"REPOAGENT_TOKEN_BUDGET,default=0"`

	DefaultRepoURL string `env:"REPOAGENT_DEFAULT_REPO,default=https://github.com/tiangolo/fastapi"`
}

// Load reads .env (when present) and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}
	return &cfg, nil
}
