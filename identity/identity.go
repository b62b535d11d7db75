package identity

import (
	"context"
	"errors"

	"outlet-service/models"
	"outlet-service/store"
	"outlet-service/token"
)

var (
	// ErrUnauthenticated means the token's principal no longer exists.
	ErrUnauthenticated = errors.New("identity: unauthenticated")
	// ErrEmailNotConfirmed means the principal exists but has not verified
	// their email: authenticated but forbidden, distinct from both success
	// and a missing principal.
	ErrEmailNotConfirmed = errors.New("identity: email not confirmed")
)

// OutletRef is the identity's tenant reference. Nil for admins.
type OutletRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleSnapshot is the role as loaded for this request. Module membership is
// never taken from token claims; it is re-read so role edits take effect on
// the very next request.
type RoleSnapshot struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	IsAdmin bool              `json:"is_admin"`
	Modules models.ModuleList `json:"modules"`
}

// CurrentIdentity is the per-request principal attached to the context by the
// authorization gate.
type CurrentIdentity struct {
	ID     string        `json:"id"`
	Email  string        `json:"email"`
	Outlet *OutletRef    `json:"outlet,omitempty"`
	Role   *RoleSnapshot `json:"role,omitempty"`
}

// AdminIdentity is the backoffice counterpart. Admins carry no outlet or role.
type AdminIdentity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Resolver turns verified token claims into the authoritative identity by
// reloading the principal from the system of record.
type Resolver struct {
	users  store.UserStore
	admins store.AdminStore
}

func NewResolver(users store.UserStore, admins store.AdminStore) *Resolver {
	return &Resolver{users: users, admins: admins}
}

// ResolveTenantUser loads the user by email, with role and outlet. When the
// user exists but is unconfirmed it returns the identity together with
// ErrEmailNotConfirmed so the gate can decide whether the route tolerates
// unconfirmed principals.
func (r *Resolver) ResolveTenantUser(ctx context.Context, claims token.Claims) (*CurrentIdentity, error) {
	user, err := r.users.ByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	ident := &CurrentIdentity{
		ID:    user.ID,
		Email: user.Email,
	}
	if user.Outlet != nil {
		ident.Outlet = &OutletRef{ID: user.Outlet.ID, Name: user.Outlet.Name}
	} else if user.OutletID != "" {
		ident.Outlet = &OutletRef{ID: user.OutletID}
	}
	if user.Role != nil {
		ident.Role = &RoleSnapshot{
			ID:      user.Role.ID,
			Name:    user.Role.Name,
			IsAdmin: user.Role.IsAdmin,
			Modules: user.Role.Modules,
		}
	}

	if !user.IsConfirmed {
		return ident, ErrEmailNotConfirmed
	}
	return ident, nil
}

// ResolveAdmin loads the admin by id.
func (r *Resolver) ResolveAdmin(ctx context.Context, claims token.Claims) (*AdminIdentity, error) {
	admin, err := r.admins.ByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return &AdminIdentity{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
	}, nil
}
