// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's per-session key-value storage and the
// token store built on top of it.
//
// [SessionStorage] is a string key-value store scoped to one client session.
// Two implementations ship with the package: a SQLite-backed one that
// survives process restarts when the session id is reused, and an in-memory
// one. [TokenStore] binds a storage to the single configured key the bearer
// token lives under; [NopTokenStore] stands in when no storage is available.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStorage is a string key-value store scoped to a single session.
type SessionStorage interface {
	// GetItem returns the value stored under key, or [ErrItemNotFound].
	GetItem(ctx context.Context, key string) (string, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
	// Clear deletes every item of the session.
	Clear(ctx context.Context) error
}

// TokenStore persists the bearer token under a fixed key.
type TokenStore interface {
	// Get returns the stored token, or [ErrItemNotFound] if there is none.
	Get(ctx context.Context) (string, error)
	// Set stores token, replacing any previous one.
	Set(ctx context.Context, token string) error
	// Remove deletes the stored token.
	Remove(ctx context.Context) error
}
