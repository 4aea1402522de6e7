package context

import (
	"context"

	"expensetracker/internal/domain/service"
)

// KeyPrincipal is the key for storing the verified identity in context.
const KeyPrincipal ContextKey = "principal"

// WithPrincipal returns a new context carrying the verified identity.
// Handlers and usecases read it back with GetPrincipal; nothing is stored in
// any process-wide holder, so concurrent requests cannot observe each other.
func WithPrincipal(ctx context.Context, principal service.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipal extracts the verified identity from the context. The second
// return value is false on routes that were never authenticated.
func GetPrincipal(ctx context.Context) (service.Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(service.Principal)

	return principal, ok
}
