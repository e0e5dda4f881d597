package scope

import "context"

type ctxKey struct{}

// SetScopeToContext returns a copy of ctx carrying s.
func SetScopeToContext(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// GetScopeFromContext returns the principal stored in ctx, if any.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(ctxKey{}).(Scope)
	return s, ok
}
