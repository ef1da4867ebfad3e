package utils

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type traceContextKey struct{}

const RequestIDHeader = "X-Request-ID"

// NewApiContext reuses the caller's request id when it sends one.
func NewApiContext(r *http.Request) context.Context {
	traceID := r.Header.Get(RequestIDHeader)
	if traceID == "" {
		traceID = uuid.New().String()
	}
	return WithTraceID(r.Context(), traceID)
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceContextKey{}, traceID)
}

func TraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(traceContextKey{}).(string)
	return traceID
}

func ContextLog(ctx context.Context, log *zap.SugaredLogger) *zap.SugaredLogger {
	return log.With(zap.String("trace", TraceID(ctx)))
}
