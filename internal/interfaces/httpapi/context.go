package httpapi

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

const requestIDHeader = "X-Request-ID"

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// resolveRequestID keeps a caller-supplied id when it is a sane token and
// mints a UUID otherwise.
func resolveRequestID(raw string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" || len(candidate) > 128 || strings.ContainsAny(candidate, " \t\r\n") {
		return uuid.NewString()
	}
	return candidate
}
