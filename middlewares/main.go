package middlewares

import (
	"context"
	"net/http"

	"outlet-service/identity"
)

type ContextKey string

const (
	IdentityContextKey ContextKey = "identity"
	AdminContextKey    ContextKey = "admin"
)

// Middleware type - function that wraps http.HandlerFunc
type Middleware func(http.HandlerFunc) http.HandlerFunc

func ChainMiddleware(middlewares ...Middleware) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// GetIdentityFromContext returns the tenant identity the gate attached, or
// nil when the request did not pass through the tenant gate.
func GetIdentityFromContext(ctx context.Context) *identity.CurrentIdentity {
	if ident, ok := ctx.Value(IdentityContextKey).(*identity.CurrentIdentity); ok {
		return ident
	}
	return nil
}

// GetAdminFromContext returns the admin identity attached by the admin gate.
func GetAdminFromContext(ctx context.Context) *identity.AdminIdentity {
	if admin, ok := ctx.Value(AdminContextKey).(*identity.AdminIdentity); ok {
		return admin
	}
	return nil
}
