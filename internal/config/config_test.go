package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HUBCTL_CONFIG_PATH", "")

	Load()

	assert.Equal(t, "http://localhost:8080", Get("server_url", ""))
	assert.Equal(t, 10, GetInt("page_size", 0))
	assert.Equal(t, 15, GetInt("request_timeout_seconds", 0))
	assert.True(t, GetBool("offline_cache", false))
	assert.False(t, GetBool("logging_enabled", true))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := "server_url = \"https://hub.example.com\"\npage_size = 25\nquiet = true\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	t.Setenv("HUBCTL_CONFIG_PATH", configPath)

	Load()

	assert.Equal(t, "https://hub.example.com", Get("server_url", ""))
	assert.Equal(t, 25, GetInt("page_size", 0))
	assert.True(t, GetBool("quiet", false))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("page_size = 25\n"), 0644))
	t.Setenv("HUBCTL_CONFIG_PATH", configPath)
	t.Setenv("HUBCTL_PAGE_SIZE", "50")

	Load()

	assert.Equal(t, 50, GetInt("page_size", 0))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("HUBCTL_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("HUBCTL_PAGE_SIZE", "-3")
	t.Setenv("HUBCTL_SERVER_URL", "not-a-url")
	t.Setenv("HUBCTL_TABLE_FORMAT", "fancy")

	Load()

	assert.Equal(t, 10, GetInt("page_size", 0))
	assert.Equal(t, "http://localhost:8080", Get("server_url", ""))
	assert.Equal(t, "default", Get("table_format", ""))
}

func TestURLValidatorTrimsTrailingSlash(t *testing.T) {
	t.Setenv("HUBCTL_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("HUBCTL_SERVER_URL", "https://hub.example.com/")

	Load()

	assert.Equal(t, "https://hub.example.com", Get("server_url", ""))
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"off", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			Set("some_flag", tt.value)
			assert.Equal(t, tt.want, GetBool("some_flag", !tt.want))
		})
	}
}
