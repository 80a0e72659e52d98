package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resourcehub/hubctl/internal/config"
)

func reloadConfigForTest(t *testing.T) {
	t.Helper()
	config.Load()
}

func TestInitDisabledReturnsNoop(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	_, isNoop := logger.(noopLogger)
	assert.True(t, isNoop)
	assert.NoError(t, logger.Shutdown())
}

func TestInitWritesJSONWithRedaction(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("HUBCTL_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	// Re-load config so state_dir points at the temp dir
	reloadConfigForTest(t)

	logger, err := Init(Config{Enabled: true, Level: "debug", MaxFiles: 3, Command: "test", PID: 42})
	require.NoError(t, err)

	logger.Info("request sent", "path", "/api/v1/profiles", "auth_token", "secret-value")
	require.NoError(t, logger.Shutdown())

	impl, ok := logger.(*loggerImpl)
	require.True(t, ok)
	data, err := os.ReadFile(impl.filePath())
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "request sent", entry["msg"])
	assert.Equal(t, "/api/v1/profiles", entry["path"])
	assert.Equal(t, "[REDACTED]", entry["auth_token"])
}

func TestRedactor(t *testing.T) {
	r := newRedactor()
	tests := []struct {
		key       string
		sensitive bool
	}{
		{"token", true},
		{"auth_token", true},
		{"authorization", true},
		{"bearer_value", true},
		{"path", false},
		{"tokenizer", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.sensitive, r.isSensitive(tt.key))
		})
	}

	pairs := r.redact([]any{"token", "abc", "path", "/x"})
	assert.Equal(t, []any{"token", "[REDACTED]", "path", "/x"}, pairs)
}

func TestRotateKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	names := []string{"hubctl_a.log", "hubctl_b.log", "hubctl_c.log", "unrelated.txt"}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs, other int
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			logs++
		} else {
			other++
		}
	}
	assert.Equal(t, 2, logs)
	assert.Equal(t, 1, other)
}
