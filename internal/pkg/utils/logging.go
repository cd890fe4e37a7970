package utils

import (
	"context"

	"openhours-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestID returns ctx carrying a fresh request ID when it has none,
// for work that does not start from an HTTP request.
func WithRequestID(ctx context.Context) context.Context {
	if GetRequestID(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, GenerateRequestID())
}
