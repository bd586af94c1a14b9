package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"auth-gateway/internal/platform/middleware"
)

// HealthCheck probes one dependency. Checks are optional; a gateway with
// no Redis configured simply has none.
type HealthCheck func(ctx context.Context) error

// NewRouter wires all public endpoints behind the shared middleware
// chain.
func NewRouter(sessions *SessionHandler, checks map[string]HealthCheck) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)

	sessions.Register(r)

	r.Get("/healthz", handleHealth(checks))
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func handleHealth(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		deps := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				deps[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":       http.StatusText(status),
			"dependencies": deps,
		})
	}
}
