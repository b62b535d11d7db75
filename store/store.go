package store

import (
	"context"
	"errors"

	"outlet-service/helper"
	"outlet-service/models"
)

var (
	ErrNotFound = errors.New("store: not found")
	ErrConflict = errors.New("store: already exists")
)

// UserStore is the system of record for tenant principals. Lookups used by
// the auth path key on email and must preload role and outlet so permission
// checks always see fresh data.
type UserStore interface {
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id string) (*models.User, error)
	ByIDInOutlet(ctx context.Context, id, outletID string) (*models.User, error)
	List(ctx context.Context, outletID string, p helper.Pagination) ([]models.User, int64, error)
	ListAll(ctx context.Context, p helper.Pagination) ([]models.User, int64, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
	// DeleteWithOutletCleanup removes the user and, when it was the outlet's
	// last one, the outlet with all of its roles, categories and products.
	DeleteWithOutletCleanup(ctx context.Context, user *models.User) (outletRemoved bool, err error)
}

type AdminStore interface {
	ByEmail(ctx context.Context, email string) (*models.Admin, error)
	ByID(ctx context.Context, id string) (*models.Admin, error)
	List(ctx context.Context, p helper.Pagination) ([]models.Admin, int64, error)
	Create(ctx context.Context, admin *models.Admin) error
	Save(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, admin *models.Admin) error
}

type OutletStore interface {
	ByID(ctx context.Context, id string) (*models.Outlet, error)
	Create(ctx context.Context, outlet *models.Outlet) error
}

type RoleStore interface {
	ByID(ctx context.Context, id string) (*models.Role, error)
	List(ctx context.Context, outletID string, p helper.Pagination) ([]models.Role, int64, error)
	Create(ctx context.Context, role *models.Role) error
	Save(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, role *models.Role) error
}

type CategoryStore interface {
	ByID(ctx context.Context, id, outletID string) (*models.Category, error)
	ByName(ctx context.Context, name, outletID string) (*models.Category, error)
	List(ctx context.Context, outletID string, p helper.Pagination) ([]models.Category, int64, error)
	Create(ctx context.Context, category *models.Category) error
	Save(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, category *models.Category) error
}

type ProductStore interface {
	ByID(ctx context.Context, id, outletID string) (*models.Product, error)
	BySKU(ctx context.Context, sku, outletID string) (*models.Product, error)
	List(ctx context.Context, outletID string, p helper.Pagination) ([]models.Product, int64, error)
	Create(ctx context.Context, product *models.Product) error
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, product *models.Product) error
}

// RefreshTokenStore tracks issued refresh tokens so they can be revoked
// server-side; a refresh token whose record is gone is dead.
type RefreshTokenStore interface {
	ByID(ctx context.Context, id string) (*models.RefreshToken, error)
	Create(ctx context.Context, rec *models.RefreshToken) error
	Delete(ctx context.Context, id string) error
	DeleteForUser(ctx context.Context, userID string) error
}
