package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(CredentialEnvKey, "")
	t.Setenv("SECRETS_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("LLM_READ_TIMEOUT", "")

	cfg := Load()
	assert.Equal(t, "https://api.deepseek.com/v1", cfg.LLMBaseURL)
	assert.Equal(t, "deepseek-chat", cfg.LLMModel)
	assert.Equal(t, 1500, cfg.LLMMaxTokens)
	assert.InDelta(t, 0.7, cfg.LLMTemperature, 0.0001)
	assert.Equal(t, 15*time.Second, cfg.LLMReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.LLMConnectTimeout)
	assert.Equal(t, "memory", cfg.SessionStore)
	assert.False(t, cfg.LLMOnline())
	assert.Empty(t, cfg.CredentialSource)
}

func TestLoadCredentialFromEnv(t *testing.T) {
	t.Setenv(CredentialEnvKey, "  sk-env  ")
	cfg := Load()
	assert.True(t, cfg.LLMOnline())
	assert.Equal(t, "sk-env", cfg.LLMAPIKey)
	assert.Equal(t, "env", cfg.CredentialSource)
}

func TestLoadCredentialFromSecretsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.toml")
	require.NoError(t, os.WriteFile(path, []byte(`DEEPSEEK_API_KEY = "sk-file"`+"\n"), 0o600))
	t.Setenv(CredentialEnvKey, "")
	t.Setenv("SECRETS_PATH", path)

	cfg := Load()
	assert.True(t, cfg.LLMOnline())
	assert.Equal(t, "sk-file", cfg.LLMAPIKey)
	assert.Equal(t, "secrets", cfg.CredentialSource)
}

func TestLoadMalformedSecretsFileIsOffline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.toml")
	require.NoError(t, os.WriteFile(path, []byte("DEEPSEEK_API_KEY = \n[[["), 0o600))
	t.Setenv(CredentialEnvKey, "")
	t.Setenv("SECRETS_PATH", path)

	cfg := Load()
	assert.False(t, cfg.LLMOnline())
	require.Error(t, cfg.CredentialError)
	assert.Contains(t, cfg.CredentialError.Error(), "failed to parse secrets file")
}

func TestLoadMissingSecretsFileIsNotAnError(t *testing.T) {
	t.Setenv(CredentialEnvKey, "")
	t.Setenv("SECRETS_PATH", filepath.Join(t.TempDir(), "absent.toml"))

	cfg := Load()
	assert.False(t, cfg.LLMOnline())
	assert.NoError(t, cfg.CredentialError)
}

func TestLoadEnvCredentialWinsOverSecretsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.toml")
	require.NoError(t, os.WriteFile(path, []byte(`DEEPSEEK_API_KEY = "sk-file"`+"\n"), 0o600))
	t.Setenv(CredentialEnvKey, "sk-env")
	t.Setenv("SECRETS_PATH", path)

	cfg := Load()
	assert.Equal(t, "sk-env", cfg.LLMAPIKey)
	assert.Equal(t, "env", cfg.CredentialSource)
	assert.NoError(t, cfg.CredentialError)
}

func TestEnvParsers(t *testing.T) {
	t.Setenv("X_INT", "42")
	t.Setenv("X_BAD_INT", "forty")
	t.Setenv("X_DUR", "90s")
	t.Setenv("X_NEG_DUR", "-1s")
	t.Setenv("X_BOOL", "true")

	assert.Equal(t, 42, getEnvInt("X_INT", 1))
	assert.Equal(t, 1, getEnvInt("X_BAD_INT", 1))
	assert.Equal(t, 90*time.Second, getEnvDuration("X_DUR", time.Second))
	assert.Equal(t, time.Second, getEnvDuration("X_NEG_DUR", time.Second))
	assert.True(t, getEnvBool("X_BOOL", false))
	assert.Equal(t, "fallback", getEnv("X_UNSET_FOR_TEST", "fallback"))
}
