// Package logger provides structured logging built on the standard slog
// package: a small factory with functional options and type-safe
// attribute helpers for common logging patterns.
//
// Basic usage:
//
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("server starting", logger.Component("server"))
package logger
