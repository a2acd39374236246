package session

import "context"

type ctxKey struct{}

// WithID returns a context addressing the given gateway session. The session
// middleware sets it once per request; stores that partition by session read
// it back with IDFromContext.
func WithID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sid)
}

// IDFromContext returns the session id carried by ctx, or "".
func IDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(ctxKey{}).(string)
	return sid
}
