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

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	jsonBody := `{
		"app": { "log_file": "/var/log/album-client.log" },
		"adapter": {
			"http_address": "https://photos.example.com",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "/var/lib/album-client/session.db" },
			"session": { "id": "s-1", "token_key": "token", "in_memory": true, "reset": true }
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "/var/log/album-client.log", cfg.App.LogFile)
	assert.Equal(t, "https://photos.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/album-client/session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "s-1", cfg.Storage.Session.ID)
	assert.Equal(t, "token", cfg.Storage.Session.TokenKey)
	assert.True(t, cfg.Storage.Session.InMemory)
	assert.True(t, cfg.Storage.Session.Reset)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: 1000},
		{name: "bad string", input: `"eventually"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(b))
}
