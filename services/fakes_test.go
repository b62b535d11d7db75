package services

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"outlet-service/helper"
	"outlet-service/models"
	"outlet-service/store"
)

// In-memory stores backing the service tests. They mirror the persistence
// contract: sentinel errors, id assignment on create, outlet scoping.

type fakeStores struct {
	mu            sync.Mutex
	users         map[string]*models.User
	admins        map[string]*models.Admin
	outlets       map[string]*models.Outlet
	roles         map[string]*models.Role
	categories    map[string]*models.Category
	products      map[string]*models.Product
	refreshTokens map[string]*models.RefreshToken
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		users:         map[string]*models.User{},
		admins:        map[string]*models.Admin{},
		outlets:       map[string]*models.Outlet{},
		roles:         map[string]*models.Role{},
		categories:    map[string]*models.Category{},
		products:      map[string]*models.Product{},
		refreshTokens: map[string]*models.RefreshToken{},
	}
}

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

type fakeUserStore struct{ s *fakeStores }

func (f fakeUserStore) ByEmail(_ context.Context, email string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if strings.EqualFold(u.Email, email) {
			return f.s.hydrateUser(u), nil
		}
	}
	return nil, store.ErrNotFound
}

func (f fakeUserStore) ByID(_ context.Context, id string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return f.s.hydrateUser(u), nil
}

func (f fakeUserStore) ByIDInOutlet(_ context.Context, id, outletID string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok || u.OutletID != outletID {
		return nil, store.ErrNotFound
	}
	return f.s.hydrateUser(u), nil
}

func (f fakeUserStore) List(_ context.Context, outletID string, p helper.Pagination) ([]models.User, int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.User
	for _, u := range f.s.users {
		if u.OutletID == outletID {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

func (f fakeUserStore) ListAll(_ context.Context, p helper.Pagination) ([]models.User, int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.User
	for _, u := range f.s.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	assignID(&user.ID)
	f.s.users[user.ID] = user
	return nil
}

func (f fakeUserStore) Save(_ context.Context, user *models.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.users[user.ID] = user
	return nil
}

func (f fakeUserStore) Delete(_ context.Context, user *models.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.users, user.ID)
	return nil
}

func (f fakeUserStore) DeleteWithOutletCleanup(_ context.Context, user *models.User) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.users, user.ID)

	for _, u := range f.s.users {
		if u.OutletID == user.OutletID {
			return false, nil
		}
	}
	for id, p := range f.s.products {
		if p.OutletID == user.OutletID {
			delete(f.s.products, id)
		}
	}
	for id, c := range f.s.categories {
		if c.OutletID == user.OutletID {
			delete(f.s.categories, id)
		}
	}
	for id, r := range f.s.roles {
		if r.OutletID == user.OutletID {
			delete(f.s.roles, id)
		}
	}
	delete(f.s.outlets, user.OutletID)
	return true, nil
}

// hydrateUser fills the Role and Outlet associations the way the persistence
// layer preloads them. Callers hold the lock.
func (s *fakeStores) hydrateUser(u *models.User) *models.User {
	copied := *u
	if u.RoleID != nil {
		if role, ok := s.roles[*u.RoleID]; ok {
			roleCopy := *role
			copied.Role = &roleCopy
		}
	}
	if u.OutletID != "" {
		if outlet, ok := s.outlets[u.OutletID]; ok {
			outletCopy := *outlet
			copied.Outlet = &outletCopy
		}
	}
	return &copied
}

type fakeAdminStore struct{ s *fakeStores }

func (f fakeAdminStore) ByEmail(_ context.Context, email string) (*models.Admin, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, a := range f.s.admins {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f fakeAdminStore) ByID(_ context.Context, id string) (*models.Admin, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	a, ok := f.s.admins[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func (f fakeAdminStore) List(_ context.Context, p helper.Pagination) ([]models.Admin, int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.Admin
	for _, a := range f.s.admins {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	assignID(&admin.ID)
	f.s.admins[admin.ID] = admin
	return nil
}

func (f fakeAdminStore) Save(_ context.Context, admin *models.Admin) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.admins[admin.ID] = admin
	return nil
}

func (f fakeAdminStore) Delete(_ context.Context, admin *models.Admin) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.admins, admin.ID)
	return nil
}

type fakeOutletStore struct{ s *fakeStores }

func (f fakeOutletStore) ByID(_ context.Context, id string) (*models.Outlet, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	o, ok := f.s.outlets[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return o, nil
}

func (f fakeOutletStore) Create(_ context.Context, outlet *models.Outlet) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	assignID(&outlet.ID)
	f.s.outlets[outlet.ID] = outlet
	return nil
}

type fakeRoleStore struct{ s *fakeStores }

func (f fakeRoleStore) ByID(_ context.Context, id string) (*models.Role, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r, ok := f.s.roles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (f fakeRoleStore) List(_ context.Context, outletID string, p helper.Pagination) ([]models.Role, int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.Role
	for _, r := range f.s.roles {
		if r.OutletID == outletID {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (f fakeRoleStore) Create(_ context.Context, role *models.Role) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	assignID(&role.ID)
	f.s.roles[role.ID] = role
	return nil
}

func (f fakeRoleStore) Save(_ context.Context, role *models.Role) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.roles[role.ID] = role
	return nil
}

func (f fakeRoleStore) Delete(_ context.Context, role *models.Role) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.roles, role.ID)
	return nil
}

type fakeCategoryStore struct{ s *fakeStores }

func (f fakeCategoryStore) ByID(_ context.Context, id, outletID string) (*models.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.categories[id]
	if !ok || c.OutletID != outletID {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (f fakeCategoryStore) ByName(_ context.Context, name, outletID string) (*models.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, c := range f.s.categories {
		if c.OutletID == outletID && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f fakeCategoryStore) List(_ context.Context, outletID string, p helper.Pagination) ([]models.Category, int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.Category
	for _, c := range f.s.categories {
		if c.OutletID == outletID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (f fakeCategoryStore) Create(_ context.Context, category *models.Category) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	assignID(&category.ID)
	f.s.categories[category.ID] = category
	return nil
}

func (f fakeCategoryStore) Save(_ context.Context, category *models.Category) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.categories[category.ID] = category
	return nil
}

func (f fakeCategoryStore) Delete(_ context.Context, category *models.Category) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.categories, category.ID)
	return nil
}

type fakeProductStore struct{ s *fakeStores }

func (f fakeProductStore) ByID(_ context.Context, id, outletID string) (*models.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.products[id]
	if !ok || p.OutletID != outletID {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (f fakeProductStore) BySKU(_ context.Context, sku, outletID string) (*models.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, p := range f.s.products {
		if p.OutletID == outletID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f fakeProductStore) List(_ context.Context, outletID string, p helper.Pagination) ([]models.Product, int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.Product
	for _, prod := range f.s.products {
		if prod.OutletID == outletID {
			out = append(out, *prod)
		}
	}
	return out, int64(len(out)), nil
}

func (f fakeProductStore) Create(_ context.Context, product *models.Product) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	assignID(&product.ID)
	f.s.products[product.ID] = product
	return nil
}

func (f fakeProductStore) Save(_ context.Context, product *models.Product) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.products[product.ID] = product
	return nil
}

func (f fakeProductStore) Delete(_ context.Context, product *models.Product) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.products, product.ID)
	return nil
}

type fakeRefreshTokenStore struct{ s *fakeStores }

func (f fakeRefreshTokenStore) ByID(_ context.Context, id string) (*models.RefreshToken, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	rec, ok := f.s.refreshTokens[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rec, nil
}

func (f fakeRefreshTokenStore) Create(_ context.Context, rec *models.RefreshToken) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	assignID(&rec.ID)
	f.s.refreshTokens[rec.ID] = rec
	return nil
}

func (f fakeRefreshTokenStore) Delete(_ context.Context, id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.refreshTokens[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.s.refreshTokens, id)
	return nil
}

func (f fakeRefreshTokenStore) DeleteForUser(_ context.Context, userID string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for id, rec := range f.s.refreshTokens {
		if rec.UserID == userID {
			delete(f.s.refreshTokens, id)
		}
	}
	return nil
}

// recordingSender captures outbound verification emails.
type recordingSender struct {
	mu    sync.Mutex
	sent  []string
	links []string
	err   error
}

func (r *recordingSender) SendVerificationEmail(_ context.Context, to, link string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, to)
	r.links = append(r.links, link)
	return nil
}
