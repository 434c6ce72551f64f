// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal front-end of the albums
// client. The header reflects the login state reported through the client's
// subscriber mechanism.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-album-client/internal/adapter"
	"github.com/MKhiriev/go-album-client/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	client   adapter.ServerAdapter
	log      *logger.Logger
	restored <-chan struct{}
}

type Option func(*TUI)

// WithRestored makes Run notify subscribers once restored is closed, so the
// header picks up the outcome of the startup token check.
func WithRestored(restored <-chan struct{}) Option {
	return func(t *TUI) {
		t.restored = restored
	}
}

func New(client adapter.ServerAdapter, log *logger.Logger, opts ...Option) *TUI {
	t := &TUI{client: client, log: log}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *TUI) Run(ctx context.Context) error {
	model := newAlbumsModel(ctx, t.client, t.log)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.client.Subscribe(func(loggedIn bool) {
		program.Send(loginStateMsg{loggedIn: loggedIn})
	})

	if t.restored != nil {
		go func() {
			select {
			case <-t.restored:
				t.client.NotifySubscribers()
			case <-ctx.Done():
			}
		}()
	}

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.log.Info().Msg("ui stopped by context")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
