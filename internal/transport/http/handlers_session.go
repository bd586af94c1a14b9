package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"auth-gateway/internal/session"
)

//go:generate mockgen -source=handlers_session.go -destination=mocks/session-mocks.go -package=mocks SessionResolver

// SessionResolver is the orchestrator surface the transport consumes.
type SessionResolver interface {
	Resolve(ctx context.Context, claim session.IdentityClaim) session.Outcome
}

// SessionHandler is the thin HTTP layer over the orchestrator. It decodes
// the claim, delegates, and encodes the outcome; no branching logic of
// its own.
type SessionHandler struct {
	sessions SessionResolver
	logger   *slog.Logger
}

func NewSessionHandler(sessions SessionResolver, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

// Register wires the session routes.
func (h *SessionHandler) Register(r chi.Router) {
	r.Post("/auth/sessions", h.handleCreate)
	r.Options("/auth/sessions", h.handlePreflight)
}

type sessionRequest struct {
	CPF *string `json:"cpf"`
}

type sessionResponse struct {
	AccessToken string  `json:"accessToken"`
	ExpiresIn   int     `json:"expiresIn"`
	ClienteID   *string `json:"clienteId"`
	Tipo        string  `json:"tipo"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Upstream consumers depend on malformed bodies answering 500;
		// see the compatibility note in DESIGN.md.
		h.logger.ErrorContext(r.Context(), "unparseable session request", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	claim := session.IdentityClaim{}
	if req.CPF != nil {
		claim.CPF = *req.CPF
	}

	outcome := h.sessions.Resolve(r.Context(), claim)
	if !outcome.OK() {
		writeJSON(w, outcome.Failure.Status, errorResponse{Error: outcome.Failure.Message})
		return
	}

	resp := sessionResponse{
		AccessToken: outcome.Session.AccessToken,
		ExpiresIn:   outcome.Session.ExpiresIn,
		Tipo:        string(outcome.Session.Kind),
	}
	if outcome.Session.SubjectID != "" {
		resp.ClienteID = &outcome.Session.SubjectID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *SessionHandler) handlePreflight(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON centralizes the response envelope: every answer, success or
// failure, is JSON with an open CORS allow-origin header.
func writeJSON(w http.ResponseWriter, status int, body any) {
	setCORS(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
}
