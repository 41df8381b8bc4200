// Package slogctx connects the log context stack to the standard library's
// log/slog. Wrap any slog.Handler with NewHandler and records emitted through
// context-taking slog calls automatically carry the merged field stack:
//
//	log := slog.New(slogctx.NewHandler(slog.NewJSONHandler(os.Stdout, nil)))
//	ctx, scope := logctx.Enter(ctx, "request_id", id)
//	defer scope.Exit()
//	log.InfoContext(ctx, "handled")
package slogctx
