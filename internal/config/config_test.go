package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "prd-coach-api/pkg/errors"
)

const testYAML = `
app:
  name: prd-coach-api
  env: test
server:
  http:
    port: ${TEST_PORT:9090}
llm:
  api_key: ${TEST_LOVABLE_KEY}
  base_url: ${TEST_LLM_BASE:https://gateway.example.com/v1}
security:
  rate_limit:
    enabled: true
    requests_per_minute: 12
`

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	clearOverrides(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	return dir
}

// 屏蔽宿主环境中可能存在的覆盖变量；viper 默认忽略空值
func clearOverrides(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LLM_API_KEY", "LLM_BASE_URL", "LLM_MODEL", "CACHE_REDIS_HOST", "SERVER_HTTP_PORT"} {
		t.Setenv(k, "")
	}
}

func TestLoadFromExpandsPlaceholders(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("TEST_LOVABLE_KEY", "sk-test")
	dir := writeConfig(t, "config.yaml", testYAML)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "https://gateway.example.com/v1/", cfg.LLM.BaseURL)
	assert.Equal(t, "google/gemini-2.5-flash", cfg.LLM.Model)
	assert.InDelta(t, 0.7, cfg.LLM.FeedbackTemperature, 1e-9)
	assert.Equal(t, 2000, cfg.LLM.OutlineMaxTokens)
	assert.Equal(t, 9090, cfg.Server.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.HTTP.ShutdownTimeout)
	assert.Equal(t, 12, cfg.Security.RateLimit.RequestsPerMinute)
	assert.False(t, cfg.Cache.Redis.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromUndefinedPlaceholderIsEmpty(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	dir := writeConfig(t, "config.yaml", testYAML)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.LLM.APIKey)

	err = cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConfiguration))
	assert.Contains(t, apperrors.AsAppError(err).Detail, "llm.api_key")
}

func TestLoadFromEnvOverride(t *testing.T) {
	clearOverrides(t)
	t.Setenv("APP_ENV", "test")
	t.Setenv("LLM_MODEL", "openai/gpt-5-mini")
	t.Setenv("CACHE_REDIS_HOST", "redis.internal")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-5-mini", cfg.LLM.Model)
	assert.True(t, cfg.Cache.Redis.Enabled())
	assert.Equal(t, "https://ai.gateway.lovable.dev/v1/", cfg.LLM.BaseURL)
}

func TestLoadFromEnvironmentFileMerges(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("TEST_LOVABLE_KEY", "sk-test")
	dir := writeConfig(t, "config.yaml", testYAML)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.staging.yaml"), []byte("llm:\n  model: staging-model\n"), 0o600))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "staging-model", cfg.LLM.Model)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.LLM = LLMConfig{APIKey: "k", BaseURL: "https://x/v1/", Model: "m"}
		c.Server.HTTP.Port = 8080
		return c
	}

	require.NoError(t, valid().Validate())

	c := valid()
	c.Server.HTTP.Port = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.Security.RateLimit.Enabled = true
	assert.Error(t, c.Validate())

	c = valid()
	c.LLM.Model = " "
	assert.True(t, errors.Is(c.Validate(), apperrors.ErrConfiguration))
}
