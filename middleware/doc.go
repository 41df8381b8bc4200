// Package middleware carries the log context stack through net/http request
// handling. Each request starts from an empty stack on purpose: context is
// never inherited across requests or from the server's startup context.
package middleware
