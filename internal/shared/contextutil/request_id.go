package contextutil

import "context"

// Unexported key type keeps the context value collision-safe.
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID reads the request ID propagated by the middleware.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects a request ID, also useful in unit tests.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
