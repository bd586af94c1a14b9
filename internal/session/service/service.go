// Package service holds the identification orchestrator: the one
// component that sequences the customer directory and the identity
// provider to turn an identity claim into a session outcome.
package service

import (
	"context"
	"log/slog"
	"strconv"

	"auth-gateway/internal/audit"
	"auth-gateway/internal/directory"
	"auth-gateway/internal/idp"
	"auth-gateway/internal/platform/metrics"
	"auth-gateway/internal/platform/middleware"
	"auth-gateway/internal/session"
)

//go:generate mockgen -source=service.go -destination=mocks/collaborator-mocks.go -package=mocks Directory,Provider

// Directory is the slice of the customer registry the orchestrator needs.
// The registry is the source of truth: a customer record must exist
// before any provider account is created for the same subject.
type Directory interface {
	Lookup(ctx context.Context, cpf string) (directory.LookupStatus, error)
	Create(ctx context.Context, customer directory.Customer) error
}

// Provider is the slice of the identity provider the orchestrator needs.
type Provider interface {
	CreateAccount(ctx context.Context, username, temporaryPassword string) (idp.AccountStatus, error)
	InitiateExchange(ctx context.Context, username, password string) (idp.ExchangeResult, error)
	RespondToChallenge(ctx context.Context, username, challengeSession, newPassword string) (idp.ExchangeResult, error)
}

// Failure messages are part of the wire contract.
const (
	msgAnonymousFailed = "error creating anonymous session"
	msgCustomerFailed  = "error creating customer record"
	msgAuthFailed      = "authentication error"
)

// Service resolves identity claims. One Resolve call per inbound request;
// the service itself is stateless and safe for concurrent use.
type Service struct {
	policy    session.ProvisioningPolicy
	directory Directory
	provider  Provider
	logger    *slog.Logger
	metrics   *metrics.Metrics
	audit     *audit.Recorder
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithMetrics attaches Prometheus counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithAudit attaches the audit recorder.
func WithAudit(r *audit.Recorder) Option {
	return func(s *Service) { s.audit = r }
}

// New builds the orchestrator.
func New(policy session.ProvisioningPolicy, dir Directory, provider Provider, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		policy:    policy,
		directory: dir,
		provider:  provider,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve turns one IdentityClaim into one Outcome, provisioning backing
// records as needed. It never returns an error: every failure mode is
// classified into the outcome before this method returns.
func (s *Service) Resolve(ctx context.Context, claim session.IdentityClaim) session.Outcome {
	var outcome session.Outcome
	if claim.Anonymous() {
		outcome = s.resolveAnonymous(ctx)
	} else {
		outcome = s.resolveIdentified(ctx, claim.Normalized())
	}
	s.record(ctx, outcome)
	return outcome
}

// record emits metrics and the audit trail for a concluded attempt.
func (s *Service) record(ctx context.Context, outcome session.Outcome) {
	if outcome.OK() {
		s.metrics.IncrementIssued(string(outcome.Session.Kind))
		s.audit.Emit(audit.Event{
			Action:      audit.ActionSessionCreated,
			SubjectHash: audit.HashSubject(outcome.Session.SubjectID),
			Kind:        string(outcome.Session.Kind),
			RequestID:   middleware.GetRequestID(ctx),
			ClientIP:    middleware.GetClientIP(ctx),
			Device:      middleware.GetDevice(ctx),
			Severity:    audit.SeverityInfo,
		})
		return
	}

	s.metrics.IncrementRefused(strconv.Itoa(outcome.Failure.Status))
	s.audit.Emit(audit.Event{
		Action:    audit.ActionAuthFailed,
		Reason:    outcome.Failure.Message,
		RequestID: middleware.GetRequestID(ctx),
		ClientIP:  middleware.GetClientIP(ctx),
		Device:    middleware.GetDevice(ctx),
		Severity:  audit.SeverityWarning,
	})
}

// ensureAccount provisions a provider account with the policy's temporary
// password. An account that already exists is success: provisioning must
// stay idempotent across concurrent or repeated attempts.
func (s *Service) ensureAccount(ctx context.Context, username string) error {
	status, err := s.provider.CreateAccount(ctx, username, s.policy.Password)
	if err != nil {
		return err
	}
	if status == idp.AccountCreated {
		s.metrics.IncrementAccountsProvisioned()
	}
	return nil
}

// resolveChallenge answers a NEW_PASSWORD_REQUIRED challenge with the
// policy's permanent password. The resulting exchange replaces the
// pending one; this step is never retried.
func (s *Service) resolveChallenge(ctx context.Context, username string, challenge *idp.Challenge) (idp.ExchangeResult, error) {
	return s.provider.RespondToChallenge(ctx, username, challenge.Session, s.policy.Password)
}
