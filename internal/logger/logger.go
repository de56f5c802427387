// Package logger configures the application slog loggers.
//
// Dev and test environments log human-readable output via tint; prod and
// staging log JSON. Handlers receive a request-scoped logger through the
// request context (see RequestLogging middleware) - use
// ContextRequestLogger to retrieve it.
package logger

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
)

// LevelNone disables logging entirely (used by the integration tests to keep
// server output out of the test log).
const LevelNone = slog.Level(127)

// ParseLogLevel converts a LOG_LEVEL env value to a slog.Level.
// Unrecognized values fall back to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none":
		return LevelNone
	default:
		return slog.LevelInfo
	}
}

// InitLogger creates the application logger for the given level and environment.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	if level == LevelNone {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var handler slog.Handler
	switch environment {
	case "prod", "staging":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}

type contextKey int

const (
	requestLoggerKey contextKey = iota
	logAttrsKey
)

// logAttrs collects extra attributes added by handlers and middleware during
// a request; they are included in the final request log line.
type logAttrs struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

// ContextRequestLogger returns the request-scoped logger, or slog.Default()
// when the request did not pass through the RequestLogging middleware.
func ContextRequestLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(requestLoggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// ContextWithLogAttrs records additional attributes against the current
// request; they are appended to the final request log line.
func ContextWithLogAttrs(ctx context.Context, attrs ...slog.Attr) {
	holder, ok := ctx.Value(logAttrsKey).(*logAttrs)
	if !ok {
		return
	}
	holder.mu.Lock()
	holder.attrs = append(holder.attrs, attrs...)
	holder.mu.Unlock()
}

// RequestLogging injects a request-scoped logger (tagged with the chi request
// id) into the request context and writes a summary log line when the request
// completes.
func RequestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := middleware.GetReqID(r.Context())

			reqLogger := logger.With(slog.String("request_id", requestID))

			holder := &logAttrs{}
			ctx := context.WithValue(r.Context(), requestLoggerKey, reqLogger)
			ctx = context.WithValue(ctx, logAttrsKey, holder)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.Int("bytes", ww.BytesWritten()),
			}
			holder.mu.Lock()
			attrs = append(attrs, holder.attrs...)
			holder.mu.Unlock()

			reqLogger.LogAttrs(r.Context(), slog.LevelInfo, "request completed", attrs...)
		})
	}
}
