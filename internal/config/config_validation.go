// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the client configuration is usable before any
// component is constructed.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	// every pooled connection would get its own empty in-memory database
	if strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return fmt.Errorf("%w: in-memory dsn is not supported", ErrInvalidStorageConfigs)
	}

	if strings.TrimSpace(cfg.Storage.Session.TokenKey) == "" {
		return fmt.Errorf("%w: empty token key", ErrInvalidStorageConfigs)
	}

	return nil
}
