// Package demo implements the logctx-demo binary: a small HTTP server that
// exercises the field stack, the context-aware logger and the HTTP middleware
// end to end.
package demo
