// Package logger is a context-aware façade over zap. Every call reads the
// live field stack carried by the context (see the root logctx package),
// merges per-call key/value pairs on top, and forwards exactly one record to
// the underlying zap logger.
//
// The package offers:
//   - a global sugared logger with a sane console encoder,
//   - context helpers (ToContext/FromContext/WithName),
//   - level configuration and parsing utilities,
//   - the full leveled surface (Infof, ErrorKV, Log, Exception, etc.) and a
//     name-addressable Logger type.
//
// The façade adds no error handling of its own: failures in the configured
// zap core surface unchanged at the call site.
package logger
