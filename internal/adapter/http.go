// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-album-client/internal/config"
	"github.com/MKhiriev/go-album-client/internal/logger"
	"github.com/MKhiriev/go-album-client/internal/store"
	"github.com/MKhiriev/go-album-client/models"
)

const (
	checkTokenPath = "/api/check_token"
	albumsPath     = "/api/albums"
	loginPath      = "/api/login"
)

var _ ServerAdapter = (*AuthenticatedClient)(nil)

// AuthenticatedClient is the HTTP/REST implementation of [ServerAdapter].
type AuthenticatedClient struct {
	client *resty.Client
	tokens store.TokenStore
	logger *logger.Logger

	mu          sync.RWMutex
	token       string
	subscribers []Subscriber

	restored chan struct{}
}

// NewAuthenticatedClient constructs an [AuthenticatedClient] for the API at
// adapterCfg.HTTPAddress.
//
// A token previously saved in tokens is restored into memory and validated
// in the background; if the server reports it invalid it is removed from
// memory and from tokens. [AuthenticatedClient.Restored] is closed once that
// check is over.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewAuthenticatedClient(ctx context.Context, adapterCfg config.ClientAdapter, tokens store.TokenStore, logger *logger.Logger) (*AuthenticatedClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	c := &AuthenticatedClient{
		client:   client,
		tokens:   tokens,
		logger:   logger,
		restored: make(chan struct{}),
	}
	c.restoreToken(ctx)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *AuthenticatedClient) restoreToken(ctx context.Context) {
	token, err := c.tokens.Get(ctx)
	if err != nil || token == "" {
		if err != nil && !errors.Is(err, store.ErrItemNotFound) {
			c.logger.Warn().Err(err).
				Str("func", "AuthenticatedClient.restoreToken").
				Msg("failed to read stored token")
		}
		close(c.restored)
		return
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	go func() {
		defer close(c.restored)

		valid, err := c.checkToken(ctx, token)
		if err != nil {
			c.logger.Warn().Err(err).
				Str("func", "AuthenticatedClient.restoreToken").
				Msg("stored token could not be validated, keeping it")
			return
		}
		if valid {
			return
		}

		c.mu.Lock()
		if c.token != token {
			// replaced by a login while the check was in flight
			c.mu.Unlock()
			return
		}
		c.token = ""
		c.mu.Unlock()

		c.logger.Info().
			Str("func", "AuthenticatedClient.restoreToken").
			Msg("stored token is no longer valid")
		c.removeStoredToken(ctx)
	}()
}

// Restored returns a channel that is closed once the token found in the
// token store at construction time has been validated, or immediately when
// there was none.
func (c *AuthenticatedClient) Restored() <-chan struct{} {
	return c.restored
}

// IsLoggedIn implements [ServerAdapter].
func (c *AuthenticatedClient) IsLoggedIn() bool {
	return c.Token() != ""
}

// Token implements [ServerAdapter].
func (c *AuthenticatedClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Subscribe implements [ServerAdapter]. A nil cb is ignored.
func (c *AuthenticatedClient) Subscribe(cb Subscriber) {
	if cb == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, cb)
}

// NotifySubscribers implements [ServerAdapter]. Subscribers run outside the
// client lock and may call back into the client.
func (c *AuthenticatedClient) NotifySubscribers() {
	c.mu.RLock()
	subscribers := slices.Clone(c.subscribers)
	loggedIn := c.token != ""
	c.mu.RUnlock()

	for _, cb := range subscribers {
		cb(loggedIn)
	}
}

// SetToken implements [ServerAdapter]. Mirroring into the token store is
// best-effort: a storage failure is logged and the in-memory token is kept.
func (c *AuthenticatedClient) SetToken(ctx context.Context, token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if err := c.tokens.Set(ctx, token); err != nil {
		c.logger.Warn().Err(err).
			Str("func", "AuthenticatedClient.SetToken").
			Msg("failed to persist token")
	}
}

// RemoveToken implements [ServerAdapter].
func (c *AuthenticatedClient) RemoveToken(ctx context.Context) {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	c.removeStoredToken(ctx)
}

func (c *AuthenticatedClient) removeStoredToken(ctx context.Context) {
	if err := c.tokens.Remove(ctx); err != nil {
		c.logger.Warn().Err(err).
			Str("func", "AuthenticatedClient.RemoveToken").
			Msg("failed to remove persisted token")
	}
}

// IsTokenValid implements [ServerAdapter]. It sends
// GET /api/check_token?token=<token> and reports whether the "valid" field
// of the response is exactly true. Returns an [*HTTPError] on a non-2xx
// status and a wrapped [ErrDecodeResponse] on a malformed body.
func (c *AuthenticatedClient) IsTokenValid(ctx context.Context) (bool, error) {
	return c.checkToken(ctx, c.Token())
}

func (c *AuthenticatedClient) checkToken(ctx context.Context, token string) (bool, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("token", token).
		Get(checkTokenPath)
	if err != nil {
		return false, fmt.Errorf("check token request: %w", err)
	}
	if _, err = c.checkStatus(resp); err != nil {
		return false, err
	}

	body, err := parseJSON[models.CheckTokenResponse](resp)
	if err != nil {
		return false, fmt.Errorf("check token: %w", err)
	}

	return body.IsValid(), nil
}

// GetAlbum implements [ServerAdapter] on top of GetAlbums.
func (c *AuthenticatedClient) GetAlbum(ctx context.Context, albumID string) (models.Album, bool) {
	albums := c.GetAlbums(ctx, []string{albumID})
	if len(albums) == 0 {
		return nil, false
	}
	return albums[0], true
}

// GetAlbums implements [ServerAdapter]. It sends
// GET /api/albums?ids=<comma-separated ids>&token=<token> and returns the
// decoded array. Any failure is logged and yields nil. The body must be a
// JSON array of objects: a scalar element or a non-array body is treated as
// a decoding failure.
func (c *AuthenticatedClient) GetAlbums(ctx context.Context, albumIDs []string) []models.Album {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":   strings.Join(albumIDs, ","),
			"token": c.Token(),
		}).
		Get(albumsPath)
	if err != nil {
		c.logger.Err(err).
			Str("func", "AuthenticatedClient.GetAlbums").
			Strs("album_ids", albumIDs).
			Msg("albums request failed")
		return nil
	}
	if _, err = c.checkStatus(resp); err != nil {
		return nil
	}

	albums, err := parseJSON[[]models.Album](resp)
	if err != nil {
		c.logger.Err(err).
			Str("func", "AuthenticatedClient.GetAlbums").
			Strs("album_ids", albumIDs).
			Msg("failed to decode albums")
		return nil
	}

	return albums
}

// Login implements [ServerAdapter]. It sends POST /api/login with an empty
// body (Content-Length: 0) and stores the returned token. Any failure is logged and leaves the token
// untouched.
func (c *AuthenticatedClient) Login(ctx context.Context) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody([]byte{}).
		Post(loginPath)
	if err != nil {
		c.logger.Err(err).
			Str("func", "AuthenticatedClient.Login").
			Msg("login request failed")
		return
	}
	if _, err = c.checkStatus(resp); err != nil {
		return
	}

	body, err := parseJSON[models.LoginResponse](resp)
	if err != nil {
		c.logger.Err(err).
			Str("func", "AuthenticatedClient.Login").
			Msg("failed to decode login response")
		return
	}

	c.SetToken(ctx, body.Token)
}

// Logout implements [ServerAdapter].
func (c *AuthenticatedClient) Logout(ctx context.Context) {
	c.RemoveToken(ctx)
}
