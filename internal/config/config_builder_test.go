package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "env:8080", RequestTimeout: time.Second}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "flag:9090"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag:9090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://photos.local")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "3s")
	t.Setenv("STORAGE_DB_DSN", "/tmp/session.db")
	t.Setenv("STORAGE_SESSION_ID", "session-1")
	t.Setenv("STORAGE_SESSION_TOKEN_KEY", "tok")
	t.Setenv("APP_LOG_FILE", "/tmp/client.log")

	cfg, err := newConfigBuilder().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "http://photos.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "session-1", cfg.Storage.Session.ID)
	assert.Equal(t, "tok", cfg.Storage.Session.TokenKey)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
}

func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	_, err := newConfigBuilder().withEnv().build()
	require.Error(t, err)
}

func TestWithDotEnv_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_SESSION_TOKEN_KEY=from-dotenv\n"), 0o600))
	t.Setenv("STORAGE_SESSION_TOKEN_KEY", "")
	require.NoError(t, os.Unsetenv("STORAGE_SESSION_TOKEN_KEY"))

	cfg, err := newConfigBuilder().withDotEnv(path).withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Storage.Session.TokenKey)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, b.err)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
}

func TestWithJSON_OverridesFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "http://json.local", "request_timeout": "2s"},
	})

	cfg, err := newConfigBuilder().
		withFlags([]string{"-a", "http://flag.local", "-c", path, "-session-key", "k"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://json.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "k", cfg.Storage.Session.TokenKey)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}
