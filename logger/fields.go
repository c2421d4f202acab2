package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across parkour.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRequestID = "request_id"
	FieldOwnerID   = "owner_id"

	// Components
	FieldComponent = "component"

	// Operations
	FieldOperation = "operation"
	FieldToken     = "token"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldRows  = "rows"
	FieldRank  = "rank"
	FieldScore = "score"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"

	// World geometry
	FieldWorld  = "world"
	FieldRegion = "region"
	FieldChunks = "chunks"
	FieldVolume = "volume"
)

// Context keys for propagating logging context
type contextKey string

const (
	requestIDKey contextKey = "logger_request_id"
	componentKey contextKey = "logger_component"
)

// WithRequestID adds a request ID to the context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}
	if ctx == nil {
		return nil
	}

	if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
		fields = append(fields, FieldRequestID, requestID)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns the global logger with fields extracted from context.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	return ForContext(Logger, ctx)
}

// ForContext returns l carrying the request and component fields of ctx.
// Injected loggers use it so per-call fields reach library log lines.
func ForContext(l *zap.SugaredLogger, ctx context.Context) *zap.SugaredLogger {
	l = OrNop(l)
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	scanner := world.NewScanner(blocks, world.ScanOptions{
//	    Logger: logger.ComponentLogger("world.scan"),
//	})
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// OrNop returns l, or a no-op logger when l is nil. Library constructors use
// it so callers may pass nil.
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return zap.NewNop().Sugar()
	}
	return l
}
