// Package version exposes build metadata for the demo binary.
//
// Version, Commit, and BuildTime are injected via Go ldflags and default to
// sensible values for local builds.
package version
