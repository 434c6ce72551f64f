// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_FILE": "/var/log/album-client.log",

		"ADAPTER_ADDRESS":         "localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_ / SESSION_
		"STORAGE_DB_DSN":            "/tmp/session.db",
		"STORAGE_SESSION_ID":        "0192f0c4-0000-7000-8000-000000000001",
		"STORAGE_SESSION_TOKEN_KEY": "token",
		"STORAGE_SESSION_IN_MEMORY": "true",
		"STORAGE_SESSION_RESET":     "true",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/var/log/album-client.log", cfg.App.LogFile)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0192f0c4-0000-7000-8000-000000000001", cfg.Storage.Session.ID)
	assert.Equal(t, "token", cfg.Storage.Session.TokenKey)
	assert.True(t, cfg.Storage.Session.InMemory)
	assert.True(t, cfg.Storage.Session.Reset)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":                    "",
		"APP_LOG_FILE":              "",
		"ADAPTER_ADDRESS":           "",
		"ADAPTER_REQUEST_TIMEOUT":   "",
		"STORAGE_DB_DSN":            "",
		"STORAGE_SESSION_ID":        "",
		"STORAGE_SESSION_TOKEN_KEY": "",
		"STORAGE_SESSION_IN_MEMORY": "",
		"STORAGE_SESSION_RESET":     "",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{raw: "500ms", want: 500 * time.Millisecond},
		{raw: "2m", want: 2 * time.Minute},
		{raw: "1h30m", want: 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": tt.raw})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.want, cfg.Adapter.RequestTimeout)
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
