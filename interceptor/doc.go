// Package interceptor carries the log context stack through gRPC request
// handling. Each RPC starts from an empty stack; nothing is propagated to or
// from remote peers beyond the optional x-request-id metadata value used to
// seed the request id field.
package interceptor
