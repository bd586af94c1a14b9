// Package audit captures key identification actions for security
// monitoring. Events are transport-agnostic so sinks can fan out: the
// structured log always receives them, and a Kafka topic does when
// brokers are configured.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Action names the auditable events the gateway emits.
type Action string

const (
	ActionSessionCreated Action = "session_created"
	ActionAuthFailed     Action = "auth_failed"
)

// Severity levels for SIEM routing.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Event is emitted from the orchestrator to capture one identification
// attempt's conclusion.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	// SubjectHash is a SHA-256 of the subject identifier. The raw CPF is
	// PII and never leaves the request path.
	SubjectHash string   `json:"subject_hash,omitempty"`
	Kind        string   `json:"kind,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	RequestID   string   `json:"request_id,omitempty"`
	ClientIP    string   `json:"client_ip,omitempty"`
	Device      string   `json:"device,omitempty"`
	Severity    Severity `json:"severity"`
}

// HashSubject produces the hex SHA-256 digest recorded in events instead
// of the raw identifier.
func HashSubject(subject string) string {
	if subject == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(subject))
	return hex.EncodeToString(sum[:])
}
