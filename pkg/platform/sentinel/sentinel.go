package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The directory and identity
// provider clients return these (optionally wrapped) so the orchestrator
// can match on the fact instead of parsing transport details.
//
// These represent factual states about external resources:
// - ErrNotFound: record does not exist in the remote system
// - ErrConflict: resource already exists (account provisioning races)
// - ErrUnavailable: remote system unreachable or answered with a server error
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
