// Package idp talks to the identity provider's admin API: the system that
// holds provisionable accounts and issues the tokens this gateway hands
// out. Three logical operations are consumed: account creation, the
// credential exchange, and the first-login challenge response.
package idp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"auth-gateway/pkg/platform/sentinel"
)

// AccountStatus reports how an account-creation call concluded.
type AccountStatus int

const (
	AccountCreated AccountStatus = iota
	// AccountExists means the provider already held the account. Callers
	// treat this the same as AccountCreated: provisioning is idempotent.
	AccountExists
)

// ChallengeNewPasswordRequired is the only challenge this gateway knows
// how to resolve: the provider forces a password reset on first login.
const ChallengeNewPasswordRequired = "NEW_PASSWORD_REQUIRED"

// Credential is an issued token and its advertised lifetime. ExpiresIn
// may be zero when the provider omits it.
type Credential struct {
	IDToken   string `json:"idToken"`
	ExpiresIn int    `json:"expiresIn"`
}

// Challenge is an intermediate step the provider demands before issuing
// a credential. Session must be echoed back in the challenge response.
type Challenge struct {
	Name    string `json:"challenge"`
	Session string `json:"session"`
}

// ExchangeResult carries either a credential or a pending challenge.
type ExchangeResult struct {
	Credential *Credential
	Challenge  *Challenge
}

// Pending reports whether a challenge must be resolved before the
// exchange yields a credential.
func (r ExchangeResult) Pending() bool {
	return r.Challenge != nil
}

// Client is the HTTP client for the provider's admin API. All calls are
// scoped to a single pool and app client, fixed at construction.
type Client struct {
	baseURL  string
	poolID   string
	clientID string
	http     *http.Client
	logger   *slog.Logger
}

// NewClient builds an admin API client for one identity pool.
func NewClient(baseURL, poolID, clientID string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		poolID:   poolID,
		clientID: clientID,
		http:     httpClient,
		logger:   logger,
	}
}

type createAccountRequest struct {
	PoolID               string `json:"poolId"`
	Username             string `json:"username"`
	TemporaryPassword    string `json:"temporaryPassword"`
	SuppressNotification bool   `json:"suppressNotification"`
}

// CreateAccount provisions an account with a temporary password and the
// welcome notification suppressed. A 409 from the provider means the
// account already exists and is reported as AccountExists, not an error.
func (c *Client) CreateAccount(ctx context.Context, username, temporaryPassword string) (AccountStatus, error) {
	payload := createAccountRequest{
		PoolID:               c.poolID,
		Username:             username,
		TemporaryPassword:    temporaryPassword,
		SuppressNotification: true,
	}

	resp, err := c.post(ctx, "/admin/accounts", payload)
	if err != nil {
		return AccountCreated, err
	}
	defer drainAndClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return AccountCreated, nil
	case http.StatusConflict:
		c.logger.InfoContext(ctx, "provider account already exists", "username", username)
		return AccountExists, nil
	default:
		return AccountCreated, fmt.Errorf("create account: %w: status %d", sentinel.ErrUnavailable, resp.StatusCode)
	}
}

type exchangeRequest struct {
	PoolID   string `json:"poolId"`
	ClientID string `json:"clientId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// InitiateExchange trades a username/password for a credential, or for a
// challenge when the provider wants a first-login password reset.
// A non-2xx answer (typically "no such account") is an error wrapping
// sentinel.ErrNotFound so the caller can recover by provisioning.
func (c *Client) InitiateExchange(ctx context.Context, username, password string) (ExchangeResult, error) {
	payload := exchangeRequest{
		PoolID:   c.poolID,
		ClientID: c.clientID,
		Username: username,
		Password: password,
	}

	resp, err := c.post(ctx, "/admin/exchange", payload)
	if err != nil {
		return ExchangeResult{}, err
	}
	defer drainAndClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeExchange(resp.Body)
	case http.StatusNotFound, http.StatusBadRequest, http.StatusUnauthorized:
		return ExchangeResult{}, fmt.Errorf("exchange for %q: %w: status %d", username, sentinel.ErrNotFound, resp.StatusCode)
	default:
		return ExchangeResult{}, fmt.Errorf("exchange: %w: status %d", sentinel.ErrUnavailable, resp.StatusCode)
	}
}

type challengeRequest struct {
	PoolID      string `json:"poolId"`
	ClientID    string `json:"clientId"`
	Username    string `json:"username"`
	Challenge   string `json:"challenge"`
	Session     string `json:"session"`
	NewPassword string `json:"newPassword"`
}

// RespondToChallenge resolves a NEW_PASSWORD_REQUIRED challenge by
// submitting the permanent password together with the challenge session.
func (c *Client) RespondToChallenge(ctx context.Context, username, challengeSession, newPassword string) (ExchangeResult, error) {
	payload := challengeRequest{
		PoolID:      c.poolID,
		ClientID:    c.clientID,
		Username:    username,
		Challenge:   ChallengeNewPasswordRequired,
		Session:     challengeSession,
		NewPassword: newPassword,
	}

	resp, err := c.post(ctx, "/admin/challenge", payload)
	if err != nil {
		return ExchangeResult{}, err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return ExchangeResult{}, fmt.Errorf("challenge response: %w: status %d", sentinel.ErrUnavailable, resp.StatusCode)
	}
	return decodeExchange(resp.Body)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w: %w", path, sentinel.ErrUnavailable, err)
	}
	return resp, nil
}

// decodeExchange reads an exchange-shaped answer. The provider returns a
// flat object; a non-empty challenge field marks the pending variant.
func decodeExchange(body io.Reader) (ExchangeResult, error) {
	var wire struct {
		IDToken   string `json:"idToken"`
		ExpiresIn int    `json:"expiresIn"`
		Challenge string `json:"challenge"`
		Session   string `json:"session"`
	}
	if err := json.NewDecoder(body).Decode(&wire); err != nil {
		return ExchangeResult{}, fmt.Errorf("decode exchange response: %w", err)
	}

	if wire.Challenge != "" {
		return ExchangeResult{Challenge: &Challenge{Name: wire.Challenge, Session: wire.Session}}, nil
	}
	if wire.IDToken == "" {
		return ExchangeResult{}, fmt.Errorf("exchange response carried neither token nor challenge")
	}
	return ExchangeResult{Credential: &Credential{IDToken: wire.IDToken, ExpiresIn: wire.ExpiresIn}}, nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
