package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when the corresponding source values
// are empty.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultTokenKey       = "album_client_token"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is the JSON log file path. Empty selects the logger default.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the albums API.
	HTTPAddress string
	// RequestTimeout is the timeout applied to every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path. Empty disables session storage.
	DSN string
}

// ClientSession contains the session storage scope.
type ClientSession struct {
	// ID of the storage session to resume. Empty starts a new session.
	ID string
	// TokenKey is the fixed key the token is stored under.
	TokenKey string
	// InMemory selects the in-process session storage. It takes precedence
	// over a configured DSN.
	InMemory bool
	// Reset clears the session before the stored token is read.
	Reset bool
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Session holds the storage session scope.
	Session ClientSession
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains process-level settings.
	App ClientApp
	// Adapter contains the API address and timeout.
	Adapter ClientAdapter
	// Storage contains session storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Session: ClientSession{
				ID:       cfg.Storage.Session.ID,
				TokenKey: cfg.Storage.Session.TokenKey,
				InMemory: cfg.Storage.Session.InMemory,
				Reset:    cfg.Storage.Session.Reset,
			},
		},
	}

	clientCfg.applyDefaults()
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.Session.TokenKey == "" {
		cfg.Storage.Session.TokenKey = DefaultTokenKey
	}
}
