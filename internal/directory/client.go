// Package directory talks to the customer registry, the authoritative
// system of record for customer data. The gateway only needs two of its
// operations: existence lookup by CPF and minimal record creation.
package directory

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

// LookupStatus is the observable state of a customer record.
type LookupStatus int

const (
	StatusNotFound LookupStatus = iota
	StatusFound
)

// Customer is the minimal record the registry accepts on creation.
type Customer struct {
	CPF   string `json:"cpf"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// NewCustomer synthesizes a minimal customer record from a normalized CPF.
// Profile data is never required to identify a caller, so the display name
// and contact value are derived deterministically from the identifier.
func NewCustomer(cpf string) Customer {
	return Customer{
		CPF:   cpf,
		Name:  "Cliente " + cpf,
		Email: cpf + "@lanchonete.com",
	}
}

// Client is the HTTP client for the customer registry.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient builds a registry client. The base URL must point at the
// registry root; routes are appended to it.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// Lookup checks whether a customer record exists for the given CPF.
// A 200 answer is Found, a 404 is NotFound; any other status or a
// transport failure is reported as an error wrapping
// sentinel.ErrUnavailable so callers can decide how to degrade.
func (c *Client) Lookup(ctx context.Context, cpf string) (LookupStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/clientes/cpf/"+cpf, nil)
	if err != nil {
		return StatusNotFound, fmt.Errorf("build lookup request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return StatusNotFound, fmt.Errorf("directory lookup: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer drainAndClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return StatusFound, nil
	case http.StatusNotFound:
		return StatusNotFound, nil
	default:
		return StatusNotFound, fmt.Errorf("directory lookup: %w: status %d", sentinel.ErrUnavailable, resp.StatusCode)
	}
}

// Create registers a new customer record. The registry answers 200 or 201
// on success; anything else fails the call.
func (c *Client) Create(ctx context.Context, customer Customer) error {
	body, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/clientes", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("directory create: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.ErrorContext(ctx, "directory rejected customer creation",
			"status", resp.StatusCode,
			"body", string(detail),
		)
		return fmt.Errorf("directory create: %w: status %d", sentinel.ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// drainAndClose finishes the body so the underlying connection can be
// reused by the pool.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
