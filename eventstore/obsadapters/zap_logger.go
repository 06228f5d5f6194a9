// Package obsadapters provides ready-made implementations of the eventstore
// observability interfaces: a zap-backed Logger and a Prometheus-backed
// MetricsCollector. Both are optional; the engine works without them.
package obsadapters

import (
	"go.uber.org/zap"
)

// ZapLogger adapts a zap.SugaredLogger to the eventstore.Logger interface.
//
// The eventstore emits slog-style alternating key/value args, which map
// directly onto zap's sugared "w" variants.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger creates a ZapLogger from a structured zap logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger.Sugar()}
}

// Debug logs a message at debug level with key/value args.
func (l *ZapLogger) Debug(msg string, args ...any) {
	l.logger.Debugw(msg, args...)
}

// Info logs a message at info level with key/value args.
func (l *ZapLogger) Info(msg string, args ...any) {
	l.logger.Infow(msg, args...)
}

// Warn logs a message at warn level with key/value args.
func (l *ZapLogger) Warn(msg string, args ...any) {
	l.logger.Warnw(msg, args...)
}

// Error logs a message at error level with key/value args.
func (l *ZapLogger) Error(msg string, args ...any) {
	l.logger.Errorw(msg, args...)
}
