// Package server wraps http.Server with functional options,
// env-driven configuration and graceful shutdown.
package server
