package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKeyRequestID struct{}

// RequestID assigns every request a correlation ID, honoring one supplied
// by the caller so traces can span the edge proxy.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), contextKeyRequestID{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(contextKeyRequestID{}).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into a context. Useful for service
// unit tests that don't run the full HTTP middleware chain.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID{}, reqID)
}
