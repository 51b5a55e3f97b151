package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_Defaults(t *testing.T) {
	cfg, err := process(context.Background(), envconfig.MapLookuper(map[string]string{
		"GITHUB_TOKEN":      "ghp_test",
		"ANTHROPIC_API_KEY": "sk-ant-test",
	}))
	require.NoError(t, err)

	assert.Equal(t, "ghp_test", cfg.GitHubToken)
	assert.Equal(t, "claude-3-7-sonnet-latest", cfg.Model)
	assert.Equal(t, int64(1024), cfg.MaxTokens)
	assert.Equal(t, 0, cfg.TokenBudget)
	assert.Equal(t, "https://github.com/tiangolo/fastapi", cfg.DefaultRepoURL)
}

func TestProcess_MissingGitHubTokenFails(t *testing.T) {
	_, err := process(context.Background(), envconfig.MapLookuper(map[string]string{
		"ANTHROPIC_API_KEY": "sk-ant-test",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
}

func TestProcess_Overrides(t *testing.T) {
	cfg, err := process(context.Background(), envconfig.MapLookuper(map[string]string{
		"GITHUB_TOKEN":           "ghp_test",
		"ANTHROPIC_API_KEY":      "sk-ant-test",
		"REPOAGENT_MODEL":        "claude-sonnet-4-0",
		"REPOAGENT_TOKEN_BUDGET": "60000",
	}))
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-0", cfg.Model)
	assert.Equal(t, 60000, cfg.TokenBudget)
}
