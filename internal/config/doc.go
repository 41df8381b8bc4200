// Package config defines the demo binary's settings and provides helpers to
// load, validate and save them in YAML format.
//
// The library itself takes no configuration; everything here scopes the demo
// process only.
package config
