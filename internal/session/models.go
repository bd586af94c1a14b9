// Package session defines the domain types for customer identification:
// the inbound identity claim, the provisioning policy, and the classified
// outcome of one identification attempt.
package session

import (
	"net/http"
	"strings"
)

// Kind discriminates the two session flavors the gateway can issue.
// The values are part of the wire contract and must not change.
type Kind string

const (
	KindAnonymous  Kind = "ANONIMO"
	KindIdentified Kind = "IDENTIFICADO"
)

// IdentityClaim is the caller-supplied identity assertion: a CPF, or the
// absence of one. It is immutable and lives for a single request.
type IdentityClaim struct {
	CPF string
}

// Anonymous reports whether the claim carries no usable identifier.
func (c IdentityClaim) Anonymous() bool {
	return strings.TrimSpace(c.CPF) == ""
}

// Normalized returns the digits-only form of the CPF. Formatting
// punctuation ("123.456.789-00") is stripped; the result is the key used
// for every downstream call.
func (c IdentityClaim) Normalized() string {
	var b strings.Builder
	b.Grow(len(c.CPF))
	for _, r := range c.CPF {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Session is a successfully issued short-lived credential.
type Session struct {
	AccessToken string
	ExpiresIn   int
	// SubjectID is the normalized CPF for identified sessions and empty
	// for anonymous ones.
	SubjectID string
	Kind      Kind
}

// Failure is a classified refusal. Status is the HTTP status the
// transport layer must answer with.
type Failure struct {
	Status  int
	Message string
}

// Outcome is the result of resolving one claim: exactly one of Session
// or Failure is set.
type Outcome struct {
	Session *Session
	Failure *Failure
}

// Issued wraps a successfully created session.
func Issued(s Session) Outcome {
	return Outcome{Session: &s}
}

// Refused wraps a classified failure.
func Refused(status int, message string) Outcome {
	return Outcome{Failure: &Failure{Status: status, Message: message}}
}

// RefusedInternal is shorthand for a 500 refusal.
func RefusedInternal(message string) Outcome {
	return Refused(http.StatusInternalServerError, message)
}

// OK reports whether the outcome carries a session.
func (o Outcome) OK() bool {
	return o.Session != nil
}
