package idp

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-gateway/pkg/platform/sentinel"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "pool-1", "client-1", srv.Client(), testLogger())
}

func TestCreateAccount(t *testing.T) {
	var received map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/accounts", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	})

	status, err := client.CreateAccount(context.Background(), "12345678900", "Lanchonete@2024")

	require.NoError(t, err)
	assert.Equal(t, AccountCreated, status)
	assert.Equal(t, "pool-1", received["poolId"])
	assert.Equal(t, "12345678900", received["username"])
	assert.Equal(t, "Lanchonete@2024", received["temporaryPassword"])
	assert.Equal(t, true, received["suppressNotification"])
}

func TestCreateAccountConflictMeansExists(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	status, err := client.CreateAccount(context.Background(), "12345678900", "pw")

	require.NoError(t, err)
	assert.Equal(t, AccountExists, status)
}

func TestCreateAccountProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.CreateAccount(context.Background(), "12345678900", "pw")

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestInitiateExchangeCredential(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/exchange", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"idToken":   "tok-1",
			"expiresIn": 3600,
		})
	})

	result, err := client.InitiateExchange(context.Background(), "12345678900", "pw")

	require.NoError(t, err)
	assert.False(t, result.Pending())
	require.NotNil(t, result.Credential)
	assert.Equal(t, "tok-1", result.Credential.IDToken)
	assert.Equal(t, 3600, result.Credential.ExpiresIn)
}

func TestInitiateExchangeChallenge(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"challenge": "NEW_PASSWORD_REQUIRED",
			"session":   "sess-9",
		})
	})

	result, err := client.InitiateExchange(context.Background(), "12345678900", "pw")

	require.NoError(t, err)
	require.True(t, result.Pending())
	assert.Equal(t, ChallengeNewPasswordRequired, result.Challenge.Name)
	assert.Equal(t, "sess-9", result.Challenge.Session)
}

func TestInitiateExchangeUnknownAccount(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusBadRequest, http.StatusUnauthorized} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.InitiateExchange(context.Background(), "12345678900", "pw")

		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel.ErrNotFound, "status %d", status)
	}
}

func TestInitiateExchangeEmptyAnswer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.InitiateExchange(context.Background(), "12345678900", "pw")

	require.Error(t, err)
}

func TestRespondToChallenge(t *testing.T) {
	var received map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/challenge", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"idToken":   "tok-final",
			"expiresIn": 3600,
		})
	})

	result, err := client.RespondToChallenge(context.Background(), "12345678900", "sess-9", "Lanchonete@2024")

	require.NoError(t, err)
	require.NotNil(t, result.Credential)
	assert.Equal(t, "tok-final", result.Credential.IDToken)
	assert.Equal(t, "NEW_PASSWORD_REQUIRED", received["challenge"])
	assert.Equal(t, "sess-9", received["session"])
	assert.Equal(t, "Lanchonete@2024", received["newPassword"])
}

func TestRespondToChallengeRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.RespondToChallenge(context.Background(), "12345678900", "sess-9", "pw")

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
}
