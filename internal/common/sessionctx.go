package common

import "context"

type contextKey int

const sessionIDKey contextKey = iota

// WithSessionID stores the resolved session ID in the request context.
func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sid)
}

// SessionIDFromContext retrieves the session ID from context, or "" if absent.
func SessionIDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(sessionIDKey).(string)
	return sid
}
