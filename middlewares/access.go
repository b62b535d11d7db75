package middlewares

import (
	"net/http"

	"outlet-service/helper"
	"outlet-service/identity"
)

// RequirePermissions declares the route's fine-grained requirements. Every
// listed permission must be present in the caller's module set; routes
// without this wrapper are open to any authenticated caller.
func RequirePermissions(required ...string) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ident := GetIdentityFromContext(r.Context())
			if ident == nil {
				helper.WriteJsonError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !identity.CheckPermissions(ident, required...) {
				helper.WriteJsonError(w, http.StatusForbidden, "You are not authorized to access this resource")
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}

// RequireModule declares the route's coarse feature-area requirement.
func RequireModule(module string) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ident := GetIdentityFromContext(r.Context())
			if ident == nil {
				helper.WriteJsonError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !identity.CheckModuleAccess(ident, module) {
				helper.WriteJsonError(w, http.StatusForbidden, "Insufficient module access")
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}
