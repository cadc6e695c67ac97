package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.DBPath)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, "huggingface", cfg.LLM.ProviderA)
	assert.Equal(t, "openai", cfg.LLM.ProviderB)
	assert.Equal(t, 0.2, cfg.LLM.Temperature)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"LECTERN_LOG_LEVEL":  "debug",
		"LECTERN_LOG_FORMAT": "json",
		"LECTERN_REDIS_URL":  "redis://localhost:6379/0",
		"LECTERN_CACHE_TTL":  "1h",
		"HF_TOKEN":           "hf_secret",
		"LECTERN_PROVIDER_B": "gemini",
	}})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "hf_secret", cfg.LLM.HuggingFace.APIKey)
	assert.Equal(t, "gemini", cfg.LLM.ProviderB)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad level", map[string]string{"LECTERN_LOG_LEVEL": "loud"}},
		{"bad format", map[string]string{"LECTERN_LOG_FORMAT": "xml"}},
		{"bad duration", map[string]string{"LECTERN_CACHE_TTL": "forever"}},
		{"negative ttl", map[string]string{"LECTERN_CACHE_TTL": "-1m"}},
		{"zero retry attempts", map[string]string{"LECTERN_LLM_RETRY_ATTEMPTS": "0"}},
		{"negative retry attempts", map[string]string{"LECTERN_LLM_RETRY_ATTEMPTS": "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(env.Options{Environment: tt.env})
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENAI_MODEL=gpt-4.1-mini\n"), 0o600))

	t.Chdir(dir)
	t.Setenv("OPENAI_MODEL", "")
	require.NoError(t, os.Unsetenv("OPENAI_MODEL"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.OpenAI.Model)
}
