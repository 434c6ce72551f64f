// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the authenticated HTTP client of the albums API.
//
// [AuthenticatedClient] holds the optional bearer token, mirrors it into a
// [store.TokenStore], issues the login, token-check and album requests and
// broadcasts login-state changes to registered [Subscriber] callbacks.
//
// Two failure policies coexist. [AuthenticatedClient.IsTokenValid] returns
// errors to the caller ([*HTTPError] for non-2xx responses). GetAlbums,
// GetAlbum and Login log failures and return zero values, so callers cannot
// tell an empty result from a failed request on that path.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-album-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// Subscriber receives the login state each time subscribers are notified.
type Subscriber func(loggedIn bool)

// ServerAdapter defines the client-side view of the albums API together with
// the local login state.
type ServerAdapter interface {
	// IsLoggedIn reports whether a non-empty token is held in memory.
	IsLoggedIn() bool

	// Token returns the token currently held in memory, or an empty string.
	Token() string

	// Subscribe registers cb. It is not invoked until NotifySubscribers is
	// called. Subscribers are never removed.
	Subscribe(cb Subscriber)

	// NotifySubscribers calls every subscriber in registration order on the
	// calling goroutine with the current IsLoggedIn value.
	NotifySubscribers()

	// SetToken replaces the in-memory token and mirrors it into the token
	// store. It does not notify subscribers.
	SetToken(ctx context.Context, token string)

	// RemoveToken clears the in-memory token and deletes it from the token
	// store. It does not notify subscribers.
	RemoveToken(ctx context.Context)

	// IsTokenValid asks the server whether the current token is valid.
	// Returns an [*HTTPError] on a non-2xx status.
	IsTokenValid(ctx context.Context) (bool, error)

	// GetAlbum fetches a single album. The boolean is false when the server
	// returned no album or the request failed.
	GetAlbum(ctx context.Context, albumID string) (models.Album, bool)

	// GetAlbums fetches the albums identified by albumIDs. It returns nil
	// when the request failed.
	GetAlbums(ctx context.Context, albumIDs []string) []models.Album

	// Login obtains a new token from the server and stores it with SetToken.
	// Failures are logged, not returned.
	Login(ctx context.Context)

	// Logout forgets the token locally. No request is sent.
	Logout(ctx context.Context)
}
