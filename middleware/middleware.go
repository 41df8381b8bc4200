package middleware

import (
	"net/http"

	"github.com/google/uuid"

	logctx "github.com/neocrym/log-with-context"
)

// RequestIDHeader is consulted for an externally assigned request id before
// one is generated.
const RequestIDHeader = "X-Request-ID"

// LogContext gives every request its own empty field stack seeded with the
// request method, path and id. Handlers and everything they call log with
// those fields attached; frames pushed while serving one request are
// invisible to every other request.
func LogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logctx.NewContext(r.Context())

		ctx, scope := logctx.Enter(ctx,
			"http_method", r.Method,
			"http_path", r.URL.Path,
			"request_id", requestID(r),
		)
		defer scope.Exit()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestID returns the inbound request id or generates one.
func requestID(r *http.Request) string {
	if id := r.Header.Get(RequestIDHeader); id != "" {
		return id
	}

	return uuid.NewString()
}
