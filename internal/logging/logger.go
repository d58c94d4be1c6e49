package logging

import (
	"context"
	"log"
	"strings"
	"sync/atomic"
)

const (
	levelInfo int32 = iota
	levelWarn
	levelError
)

var minLevel atomic.Int32

// SetLevel sets the lowest level that gets written: "info", "warn" or
// "error". Unknown values fall back to "info".
func SetLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warn", "warning":
		minLevel.Store(levelWarn)
	case "error":
		minLevel.Store(levelError)
	default:
		minLevel.Store(levelInfo)
	}
}

func enabled(level int32) bool {
	return level >= minLevel.Load()
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the request ID used in log lines.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from a context, or "" if none is set.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides structured logging for handlers and stores
type Logger struct {
	requestID string
}

// New creates a logger with request context
func New(ctx context.Context) *Logger {
	requestID := "unknown"
	if ctx != nil {
		if rid := RequestID(ctx); rid != "" {
			requestID = rid
		}
	}
	return &Logger{requestID: requestID}
}

// Background returns a logger for work not tied to a request.
func Background() *Logger {
	return &Logger{requestID: "-"}
}

func (l *Logger) Error(operation string, err error) {
	log.Printf("[error] request_id=%s operation=%s error=%v", l.requestID, operation, err)
}

func (l *Logger) Errorf(operation string, format string, args ...interface{}) {
	log.Printf("[error] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}

func (l *Logger) Info(operation string, message string) {
	if !enabled(levelInfo) {
		return
	}
	log.Printf("[info] request_id=%s operation=%s message=%s", l.requestID, operation, message)
}

func (l *Logger) Infof(operation string, format string, args ...interface{}) {
	if !enabled(levelInfo) {
		return
	}
	log.Printf("[info] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}

func (l *Logger) Warnf(operation string, format string, args ...interface{}) {
	if !enabled(levelWarn) {
		return
	}
	log.Printf("[warn] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}
