package demo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"time"

	logctx "github.com/neocrym/log-with-context"
	"github.com/neocrym/log-with-context/internal/config"
	"github.com/neocrym/log-with-context/logger"
	"github.com/neocrym/log-with-context/middleware"
)

// Options controls the demo server process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override.
	ListenAddress string
}

const (
	// readHeaderTimeout bounds slow-header clients.
	readHeaderTimeout = 5 * time.Second

	// shutdownTimeout bounds graceful shutdown on exit.
	shutdownTimeout = 10 * time.Second
)

// Run starts the demo HTTP server and blocks until the context is canceled
// or the server stops. The startup context carries a root frame with the
// service's static and process fields; each request then starts from its own
// empty stack via the middleware.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	// Name the logger after the service for every record below.
	ctx = logger.WithName(ctx, cfg.ServiceName)

	listenAddress := cfg.ListenAddress
	if opts.ListenAddress != "" {
		listenAddress = opts.ListenAddress
	}

	// Root frame for startup and shutdown records.
	ctx = logctx.NewContext(ctx)

	ctx, scope := logctx.Enter(ctx, rootFieldPairs(cfg)...)
	defer scope.Exit()

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	server := &http.Server{
		Handler:           middleware.LogContext(newMux()),
		ReadHeaderTimeout: readHeaderTimeout,
		// Requests derive from the startup context so they keep the named
		// logger; the middleware still gives each its own empty stack.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	logger.InfoKV(ctx, "Demo server listening", "listen_address", lis.Addr().String())

	// Done channel is closed after Shutdown finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(ctx, "Failed to shut down cleanly: %v", err)
		}

		close(done)
	}()

	if err := server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve HTTP: %w", err)
	}

	<-done
	logger.Info(ctx, "HTTP server stopped")

	return nil
}

// rootFieldPairs builds the startup frame: service name, configured static
// fields in deterministic order, then process details.
func rootFieldPairs(cfg *config.Config) []any {
	kvs := []any{"service", cfg.ServiceName}

	keys := make([]string, 0, len(cfg.StaticFields))
	for key := range cfg.StaticFields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		kvs = append(kvs, key, cfg.StaticFields[key])
	}

	return append(kvs, logctx.ProcessFields()...)
}
