package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Provider.BaseURL)
	assert.Equal(t, DefaultModel, cfg.Provider.Model)
	assert.Equal(t, DefaultMaxTokens, cfg.Provider.MaxTokens)
	assert.Equal(t, "discard", cfg.Logger.Output)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "advisor.yaml")
	body := `
provider:
  api_key: file-key
  model: claude-sonnet-4-5
  max_tokens: 2048
logger:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("ANTHROPIC_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Provider.APIKey, "env must win over file")
	assert.Equal(t, "claude-sonnet-4-5", cfg.Provider.Model)
	assert.Equal(t, 2048, cfg.Provider.MaxTokens)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, DefaultBaseURL, cfg.Provider.BaseURL, "unset fields keep defaults")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [not a map"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
