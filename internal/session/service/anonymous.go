package service

import (
	"context"

	"github.com/google/uuid"

	"auth-gateway/internal/idp"
	"auth-gateway/internal/session"
)

// resolveAnonymous issues a session for a caller without an identifier.
// A throwaway provider account is created under a randomized subject and
// exchanged for a credential; the directory is never touched. Every
// failure on this path is an infrastructure failure (500).
func (s *Service) resolveAnonymous(ctx context.Context) session.Outcome {
	username := s.policy.AnonymousPrefix + uuid.NewString()[:8]

	// A suffix collision would surface as "account exists", which
	// ensureAccount already reports as success.
	if err := s.ensureAccount(ctx, username); err != nil {
		s.logger.ErrorContext(ctx, "anonymous account provisioning failed", "error", err)
		return session.RefusedInternal(msgAnonymousFailed)
	}

	result, err := s.provider.InitiateExchange(ctx, username, s.policy.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "anonymous exchange failed", "error", err)
		return session.RefusedInternal(msgAnonymousFailed)
	}

	if result.Pending() {
		if result.Challenge.Name != idp.ChallengeNewPasswordRequired {
			s.logger.ErrorContext(ctx, "unsupported challenge on anonymous exchange", "challenge", result.Challenge.Name)
			return session.RefusedInternal(msgAnonymousFailed)
		}
		result, err = s.resolveChallenge(ctx, username, result.Challenge)
		if err != nil {
			s.logger.ErrorContext(ctx, "anonymous challenge response failed", "error", err)
			return session.RefusedInternal(msgAnonymousFailed)
		}
	}

	if result.Credential == nil {
		s.logger.ErrorContext(ctx, "anonymous exchange concluded without credential")
		return session.RefusedInternal(msgAnonymousFailed)
	}

	return session.Issued(session.Session{
		AccessToken: result.Credential.IDToken,
		// Anonymous sessions get the fixed short lifetime regardless of
		// what the provider reported.
		ExpiresIn: s.policy.AnonymousTTL,
		Kind:      session.KindAnonymous,
	})
}
