package logger

import (
	"context"
	log "log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

var sentryEnabled bool

// InitSentry dsn 为空时不启用
func InitSentry(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	})
	if err != nil {
		return err
	}
	sentryEnabled = true
	log.Info("Sentry initialized", "environment", environment)
	return nil
}

func FlushSentry() {
	if sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
}

// CaptureError 上报未预期的错误，附带 trace_id
func CaptureError(ctx context.Context, err error) {
	if !sentryEnabled || err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			scope.SetTag(TraceIDKey, traceID)
		}
		sentry.CaptureException(err)
	})
}

// CapturePanic 上报 panic
func CapturePanic(ctx context.Context, rec any, stack []byte) {
	if !sentryEnabled {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			scope.SetTag(TraceIDKey, traceID)
		}
		scope.SetExtra("panic", rec)
		scope.SetExtra("stack", string(stack))
		sentry.CaptureMessage("panic in request")
	})
}
