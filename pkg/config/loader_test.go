package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
  "host": "127.0.0.1",
  "port": 9000,
  "debug": true,
  "login": {"username": "alice", "password": "s3cret"},
  "seedItems": [{"name": "widget"}]
}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "alice", cfg.Login.Username)
	assert.Equal(t, "s3cret", cfg.Login.Password)
	require.Len(t, cfg.SeedItems, 1)
	assert.Equal(t, "widget", cfg.SeedItems[0]["name"])

	// Unset fields pick up defaults.
	assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, DefaultMaxLogEntries, cfg.MaxLogEntries)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
port: 9100
login:
  username: bob
seedItems:
  - name: widget
  - name: gadget
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "bob", cfg.Login.Username)
	assert.Equal(t, DefaultPassword, cfg.Login.Password)
	assert.Len(t, cfg.SeedItems, 2)
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFromFile_Empty(t *testing.T) {
	path := writeFile(t, "config.json", "")
	_, err := LoadFromFile(path)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadFromFile_InvalidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"port": }`)
	_, err := LoadFromFile(path)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "port: [unclosed")
	_, err := LoadFromFile(path)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultUsername, cfg.Login.Username)
	assert.Equal(t, DefaultPassword, cfg.Login.Password)
	assert.Equal(t, DefaultMaxLogEntries, cfg.MaxLogEntries)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &ServerConfig{Port: 1234, Login: LoginConfig{Username: "x"}}
	cfg.ApplyDefaults()

	assert.Equal(t, 1234, cfg.Port)
	assert.Equal(t, "x", cfg.Login.Username)
	assert.Equal(t, DefaultPassword, cfg.Login.Password)
	assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.WriteTimeout)
}
