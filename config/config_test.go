package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
server:
  port: 9000
log:
  level: debug
intents:
  path: /srv/intents.yaml
answer:
  strategy: hybrid
  accept_threshold: 0.6
qa:
  server_url: http://localhost:5557
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))

	t.Setenv("CSMENTOR_INTENTS_PATH", "/env/intents.json")
	t.Setenv("CSMENTOR_AUTH_SECRET", "s3cret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "hybrid", cfg.Answer.Strategy)
	assert.Equal(t, 0.6, cfg.Answer.AcceptThreshold)
	assert.Equal(t, "http://localhost:5557", cfg.QA.ServerURL)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)

	// ENV wins over the file
	assert.Equal(t, "/env/intents.json", cfg.Intents.Path)

	// Unset keys keep their defaults
	assert.Equal(t, 0.4, cfg.Answer.MatchThreshold)
	assert.Equal(t, 0.7, cfg.Answer.WordWeight)
	assert.Equal(t, 0.3, cfg.Answer.SequenceWeight)
	assert.Equal(t, DefaultContextPath, cfg.QA.ContextPath)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultIntentsPath, cfg.Intents.Path)
	assert.Equal(t, "intents", cfg.Answer.Strategy)
}

func TestLoadConfigEnvWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("CSMENTOR_QA_SERVER_URL", "http://qa:5557")
	t.Setenv("CSMENTOR_INTENTS_PATH", "/env/intents.json")
	t.Setenv("CSMENTOR_AUTH_SECRET", "env-secret")
	t.Setenv("CSMENTOR_LOG_FORMAT", "json")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://qa:5557", cfg.QA.ServerURL)
	assert.Equal(t, "/env/intents.json", cfg.Intents.Path)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, 0.5, cfg.Answer.AcceptThreshold)
	assert.Equal(t, 0.3, cfg.QA.MinConfidence)
	assert.Equal(t, 3, cfg.QA.MaxRetries)
	assert.False(t, cfg.Auth.Required)
}
