package service

import (
	"context"
	"net/http"

	"auth-gateway/internal/directory"
	"auth-gateway/internal/idp"
	"auth-gateway/internal/session"
)

// resolveIdentified issues a session for a normalized CPF. Ordering is a
// strict invariant: the directory record is ensured before any provider
// account is created, so an interrupted sequence is resumable on the next
// request instead of needing a compensating transaction.
func (s *Service) resolveIdentified(ctx context.Context, cpf string) session.Outcome {
	if outcome, ok := s.ensureCustomer(ctx, cpf); !ok {
		return outcome
	}

	result, err := s.provider.InitiateExchange(ctx, cpf, s.policy.Password)
	if err != nil {
		// Most commonly there is no matching provider account yet.
		// Provision one and retry the exchange exactly once.
		s.logger.InfoContext(ctx, "exchange failed, provisioning provider account", "error", err)
		if err := s.ensureAccount(ctx, cpf); err != nil {
			s.logger.ErrorContext(ctx, "provider account provisioning failed", "error", err)
			return session.RefusedInternal(msgAuthFailed)
		}
		result, err = s.provider.InitiateExchange(ctx, cpf, s.policy.Password)
		if err != nil {
			s.logger.ErrorContext(ctx, "exchange failed after account provisioning", "error", err)
			return session.RefusedInternal(msgAuthFailed)
		}
	}

	if result.Pending() {
		if result.Challenge.Name != idp.ChallengeNewPasswordRequired {
			// A challenge we cannot resolve is a claim-level failure,
			// not an infrastructure one.
			s.logger.ErrorContext(ctx, "unsupported challenge on exchange", "challenge", result.Challenge.Name)
			return session.Refused(http.StatusBadRequest, msgAuthFailed)
		}
		result, err = s.resolveChallenge(ctx, cpf, result.Challenge)
		if err != nil {
			s.logger.ErrorContext(ctx, "challenge response failed", "error", err)
			return session.RefusedInternal(msgAuthFailed)
		}
	}

	if result.Credential == nil {
		s.logger.ErrorContext(ctx, "exchange concluded without credential")
		return session.Refused(http.StatusBadRequest, msgAuthFailed)
	}

	return session.Issued(session.Session{
		AccessToken: result.Credential.IDToken,
		ExpiresIn:   s.sessionLifetime(result.Credential),
		SubjectID:   cpf,
		Kind:        session.KindIdentified,
	})
}

// ensureCustomer guarantees a directory record exists for the CPF before
// anything touches the provider. A lookup error is treated as "absent"
// (fail open toward creation), but a creation failure is fatal: the
// directory is authoritative and must not be bypassed by silently
// issuing a credential. The bool is false when the returned outcome is
// a failure the caller must surface.
func (s *Service) ensureCustomer(ctx context.Context, cpf string) (session.Outcome, bool) {
	status, err := s.directory.Lookup(ctx, cpf)
	if err != nil {
		s.logger.WarnContext(ctx, "directory lookup failed, assuming absent", "error", err)
		status = directory.StatusNotFound
	}
	if status == directory.StatusFound {
		return session.Outcome{}, true
	}

	if err := s.directory.Create(ctx, directory.NewCustomer(cpf)); err != nil {
		s.logger.ErrorContext(ctx, "customer record creation failed", "error", err)
		return session.RefusedInternal(msgCustomerFailed), false
	}
	s.metrics.IncrementCustomersCreated()
	return session.Outcome{}, true
}

// sessionLifetime prefers the lifetime the provider reported, falls back
// to the token's own exp claim, and lastly to the configured default.
func (s *Service) sessionLifetime(cred *idp.Credential) int {
	if cred.ExpiresIn > 0 {
		return cred.ExpiresIn
	}
	if secs := tokenLifetime(cred.IDToken); secs > 0 {
		return secs
	}
	return s.policy.FallbackTTL
}
