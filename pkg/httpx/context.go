package httpx

import "context"

type ctxKey string

// CtxKeyIdentity carries the authenticated identity (admin email) once the
// session middleware has validated the request's cookie.
const CtxKeyIdentity ctxKey = "identity"

// ContextWithIdentity returns ctx annotated with the authenticated identity.
func ContextWithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity, identity)
}

// IdentityFromContext returns the authenticated identity, or "" when the
// request is unauthenticated.
func IdentityFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyIdentity).(string); ok {
		return v
	}
	return ""
}
