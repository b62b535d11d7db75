package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"outlet-service/identity"
	"outlet-service/models"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func requestWithIdentity(ident *identity.CurrentIdentity) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/product", nil)
	if ident == nil {
		return r
	}
	ctx := context.WithValue(r.Context(), IdentityContextKey, ident)
	return r.WithContext(ctx)
}

func memberIdentity(isAdmin bool, modules ...string) *identity.CurrentIdentity {
	return &identity.CurrentIdentity{
		ID:    "user-1",
		Email: "alice@example.com",
		Role: &identity.RoleSnapshot{
			ID:      "role-1",
			Name:    "Staff",
			IsAdmin: isAdmin,
			Modules: models.ModuleList(modules),
		},
	}
}

func TestRequirePermissionsBranches(t *testing.T) {
	guard := RequirePermissions("product:read")(okHandler)

	t.Run("no identity is 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard(rec, requestWithIdentity(nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing permission is 403", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard(rec, requestWithIdentity(memberIdentity(false, "category:read")))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("granted permission passes through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard(rec, requestWithIdentity(memberIdentity(false, "product:read")))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireModuleBranches(t *testing.T) {
	guard := RequireModule("product:read")(okHandler)

	t.Run("no identity is 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard(rec, requestWithIdentity(nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing module is 403", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard(rec, requestWithIdentity(memberIdentity(false, "category:read")))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("exact module passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard(rec, requestWithIdentity(memberIdentity(false, "product:read")))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("tenant-admin role bypasses the module list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard(rec, requestWithIdentity(memberIdentity(true)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
