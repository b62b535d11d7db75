package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"outlet-service/helper"
	"outlet-service/identity"
	"outlet-service/token"
)

// AuthMiddleware is the per-request authorization gate: token verification,
// then a fresh identity load, then the route's declared requirements.
type AuthMiddleware struct {
	Issuer   *token.Issuer
	Resolver *identity.Resolver
	Logger   *zap.SugaredLogger
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("authentication required")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("invalid authorization header")
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if raw == "" {
		return "", errors.New("invalid authorization header")
	}
	return raw, nil
}

func (am *AuthMiddleware) requireTenant(next http.HandlerFunc, allowUnconfirmed bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := extractBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			helper.WriteJsonError(w, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := am.Issuer.Verify(token.TenantAccess, raw)
		if err != nil {
			helper.WriteJsonError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ident, err := am.Resolver.ResolveTenantUser(r.Context(), claims)
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrEmailNotConfirmed):
				if !allowUnconfirmed {
					helper.WriteJsonError(w, http.StatusForbidden, "Please verify your email to continue")
					return
				}
			case errors.Is(err, identity.ErrUnauthenticated):
				helper.WriteJsonError(w, http.StatusUnauthorized, "Please log in to continue")
				return
			default:
				am.Logger.Errorw("identity resolution failed", "error", err)
				helper.WriteJsonError(w, http.StatusInternalServerError, "authentication error")
				return
			}
		}

		ctx := context.WithValue(r.Context(), IdentityContextKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireAuth authenticates a confirmed tenant user and attaches the
// identity to the request context.
func (am *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return am.requireTenant(next, false)
}

// RequireAuthUnconfirmed is RequireAuth minus the confirmation check. Only
// the resend-verification route uses it; a strict gate there would lock out
// exactly the users who need to resend.
func (am *AuthMiddleware) RequireAuthUnconfirmed(next http.HandlerFunc) http.HandlerFunc {
	return am.requireTenant(next, true)
}

// RequireAdmin authenticates a backoffice admin. Admin routes are binary
// authenticated-or-not; there is no permission layer behind this gate.
func (am *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := extractBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			helper.WriteJsonError(w, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := am.Issuer.Verify(token.AdminAccess, raw)
		if err != nil {
			helper.WriteJsonError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		admin, err := am.Resolver.ResolveAdmin(r.Context(), claims)
		if err != nil {
			if errors.Is(err, identity.ErrUnauthenticated) {
				helper.WriteJsonError(w, http.StatusUnauthorized, "Admin not found")
				return
			}
			am.Logger.Errorw("admin resolution failed", "error", err)
			helper.WriteJsonError(w, http.StatusInternalServerError, "authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), AdminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
