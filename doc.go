// Package logctx lets a program accumulate structured key/value context as it
// descends through nested call scopes, and have every log record emitted
// within a scope automatically carry the merged context.
//
// The package maintains a stack of context frames per logical task, carried
// through context.Context. A frame is pushed for the lifetime of a code block
// and popped on every exit path:
//
//	ctx, scope := logctx.Enter(ctx, "current_request", requestID)
//	defer scope.Exit()
//
// Log calls made anywhere below that point (see the logger subpackage) read
// the live stack and attach the merged field set, innermost frame winning on
// key collisions.
//
// A stack belongs to exactly one logical task. New tasks start empty: call
// NewContext before handing a context to a spawned goroutine, otherwise both
// goroutines mutate the same stack and their scopes interleave. The stack is
// never propagated to child processes or serialized anywhere.
package logctx
