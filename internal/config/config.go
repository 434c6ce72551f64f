// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-album-client application. It is populated by merging values from a .env
// file, environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds the address and timeout of the albums API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the per-session key-value storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the path of the JSON log file. The interactive client owns
	// the terminal, so logs always go to a file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds outbound HTTP settings for the albums API.
type Adapter struct {
	// HTTPAddress is the base address of the albums API. Either a full URL
	// ("https://photos.example.com") or "host:port", in which case http is
	// assumed.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the per-session storage settings.
type Storage struct {
	// DB holds the SQLite database backing the session storage.
	DB DB `envPrefix:"DB_"`

	// Session identifies the storage session and the key the token lives
	// under.
	Session Session `envPrefix:"SESSION_"`
}

// DB holds connection settings for the SQLite session storage.
type DB struct {
	// DSN is the SQLite file path. Empty means no session storage is
	// available and the token lives in memory only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds the session storage scope.
type Session struct {
	// ID resumes an existing storage session. Empty starts a new one.
	// Env: STORAGE_SESSION_ID
	ID string `env:"ID"`

	// TokenKey is the fixed key the bearer token is stored under.
	// Env: STORAGE_SESSION_TOKEN_KEY
	TokenKey string `env:"TOKEN_KEY"`

	// InMemory keeps session items in process memory instead of SQLite.
	// Env: STORAGE_SESSION_IN_MEMORY
	InMemory bool `env:"IN_MEMORY"`

	// Reset deletes every item of the session on startup.
	// Env: STORAGE_SESSION_RESET
	Reset bool `env:"RESET"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags (os.Args[1:])
//  4. JSON file (path resolved from sources 1-3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
