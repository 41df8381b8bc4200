package demo

import (
	"fmt"
	"io"
	"net/http"

	logctx "github.com/neocrym/log-with-context"
	"github.com/neocrym/log-with-context/logger"
)

// newMux routes the demo endpoints.
func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/greet", handleGreet)
	mux.HandleFunc("/healthz", handleHealth)

	return mux
}

// handleGreet answers with a greeting and logs through a nested scope, so
// emitted records carry both the request frame seeded by the middleware and
// the handler's own fields.
func handleGreet(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "world"
	}

	ctx, scope := logctx.Enter(r.Context(), "handler", "greet", "name", name)
	defer scope.Exit()

	logger.InfoKV(ctx, "Handling greeting")

	fmt.Fprintf(w, "Hello, %s!\n", name)
}

// handleHealth reports liveness without touching the context stack.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)

	_, _ = io.WriteString(w, "ok")
}
