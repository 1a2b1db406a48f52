// Package zlog provides a thin nil-safe wrapper around *zap.Logger
// (spec.md §4.6 / SPEC_FULL.md §4.6). No other package in this module
// imports it; the interpreter and renderer do their own nil check.
package zlog

import "go.uber.org/zap"

// Resolve returns l, or a no-op logger if l is nil.
func Resolve(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// New builds a development-mode logger suitable for library callers that
// want readable console output rather than JSON (mirrors
// enesaygn-device-service-v3's internal/utils/logger.go constructor).
func New() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
