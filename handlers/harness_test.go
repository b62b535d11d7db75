package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"outlet-service/helper"
	"outlet-service/identity"
	"outlet-service/middlewares"
	"outlet-service/models"
	"outlet-service/services"
	"outlet-service/store"
	"outlet-service/token"
)

// memDB is the shared state behind the per-interface store views used to
// exercise the HTTP surface without a database.
type memDB struct {
	users         map[string]*models.User
	admins        map[string]*models.Admin
	outlets       map[string]*models.Outlet
	roles         map[string]*models.Role
	categories    map[string]*models.Category
	products      map[string]*models.Product
	refreshTokens map[string]*models.RefreshToken
}

func newMemDB() *memDB {
	return &memDB{
		users:         map[string]*models.User{},
		admins:        map[string]*models.Admin{},
		outlets:       map[string]*models.Outlet{},
		roles:         map[string]*models.Role{},
		categories:    map[string]*models.Category{},
		products:      map[string]*models.Product{},
		refreshTokens: map[string]*models.RefreshToken{},
	}
}

func (db *memDB) hydrate(u *models.User) *models.User {
	copied := *u
	if u.RoleID != nil {
		if role, ok := db.roles[*u.RoleID]; ok {
			roleCopy := *role
			copied.Role = &roleCopy
		}
	}
	if outlet, ok := db.outlets[u.OutletID]; ok {
		outletCopy := *outlet
		copied.Outlet = &outletCopy
	}
	return &copied
}

type memUserStore struct{ db *memDB }

func (m memUserStore) ByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.db.users {
		if strings.EqualFold(u.Email, email) {
			return m.db.hydrate(u), nil
		}
	}
	return nil, store.ErrNotFound
}

func (m memUserStore) ByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m.db.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return m.db.hydrate(u), nil
}

func (m memUserStore) ByIDInOutlet(_ context.Context, id, outletID string) (*models.User, error) {
	u, ok := m.db.users[id]
	if !ok || u.OutletID != outletID {
		return nil, store.ErrNotFound
	}
	return m.db.hydrate(u), nil
}

func (m memUserStore) List(_ context.Context, outletID string, _ helper.Pagination) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range m.db.users {
		if u.OutletID == outletID {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

func (m memUserStore) ListAll(_ context.Context, _ helper.Pagination) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range m.db.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m memUserStore) Create(_ context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.db.users[user.ID] = user
	return nil
}

func (m memUserStore) Save(_ context.Context, user *models.User) error {
	m.db.users[user.ID] = user
	return nil
}

func (m memUserStore) Delete(_ context.Context, user *models.User) error {
	delete(m.db.users, user.ID)
	return nil
}

func (m memUserStore) DeleteWithOutletCleanup(_ context.Context, user *models.User) (bool, error) {
	delete(m.db.users, user.ID)
	for _, u := range m.db.users {
		if u.OutletID == user.OutletID {
			return false, nil
		}
	}
	delete(m.db.outlets, user.OutletID)
	return true, nil
}

type memAdminStore struct{ db *memDB }

func (m memAdminStore) ByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range m.db.admins {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m memAdminStore) ByID(_ context.Context, id string) (*models.Admin, error) {
	a, ok := m.db.admins[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func (m memAdminStore) List(_ context.Context, _ helper.Pagination) ([]models.Admin, int64, error) {
	var out []models.Admin
	for _, a := range m.db.admins {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (m memAdminStore) Create(_ context.Context, admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	m.db.admins[admin.ID] = admin
	return nil
}

func (m memAdminStore) Save(_ context.Context, admin *models.Admin) error {
	m.db.admins[admin.ID] = admin
	return nil
}

func (m memAdminStore) Delete(_ context.Context, admin *models.Admin) error {
	delete(m.db.admins, admin.ID)
	return nil
}

type memOutletStore struct{ db *memDB }

func (m memOutletStore) ByID(_ context.Context, id string) (*models.Outlet, error) {
	o, ok := m.db.outlets[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return o, nil
}

func (m memOutletStore) Create(_ context.Context, outlet *models.Outlet) error {
	if outlet.ID == "" {
		outlet.ID = uuid.NewString()
	}
	m.db.outlets[outlet.ID] = outlet
	return nil
}

type memRoleStore struct{ db *memDB }

func (m memRoleStore) ByID(_ context.Context, id string) (*models.Role, error) {
	r, ok := m.db.roles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m memRoleStore) List(_ context.Context, outletID string, _ helper.Pagination) ([]models.Role, int64, error) {
	var out []models.Role
	for _, r := range m.db.roles {
		if r.OutletID == outletID {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (m memRoleStore) Create(_ context.Context, role *models.Role) error {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	m.db.roles[role.ID] = role
	return nil
}

func (m memRoleStore) Save(_ context.Context, role *models.Role) error {
	m.db.roles[role.ID] = role
	return nil
}

func (m memRoleStore) Delete(_ context.Context, role *models.Role) error {
	delete(m.db.roles, role.ID)
	return nil
}

type memRefreshTokenStore struct{ db *memDB }

func (m memRefreshTokenStore) ByID(_ context.Context, id string) (*models.RefreshToken, error) {
	rec, ok := m.db.refreshTokens[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rec, nil
}

func (m memRefreshTokenStore) Create(_ context.Context, rec *models.RefreshToken) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	m.db.refreshTokens[rec.ID] = rec
	return nil
}

func (m memRefreshTokenStore) Delete(_ context.Context, id string) error {
	if _, ok := m.db.refreshTokens[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.db.refreshTokens, id)
	return nil
}

func (m memRefreshTokenStore) DeleteForUser(_ context.Context, userID string) error {
	for id, rec := range m.db.refreshTokens {
		if rec.UserID == userID {
			delete(m.db.refreshTokens, id)
		}
	}
	return nil
}

type memCategoryStore struct{ db *memDB }

func (m memCategoryStore) ByID(_ context.Context, id, outletID string) (*models.Category, error) {
	c, ok := m.db.categories[id]
	if !ok || c.OutletID != outletID {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (m memCategoryStore) ByName(_ context.Context, name, outletID string) (*models.Category, error) {
	for _, c := range m.db.categories {
		if c.OutletID == outletID && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m memCategoryStore) List(_ context.Context, outletID string, _ helper.Pagination) ([]models.Category, int64, error) {
	var out []models.Category
	for _, c := range m.db.categories {
		if c.OutletID == outletID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (m memCategoryStore) Create(_ context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	m.db.categories[category.ID] = category
	return nil
}

func (m memCategoryStore) Save(_ context.Context, category *models.Category) error {
	m.db.categories[category.ID] = category
	return nil
}

func (m memCategoryStore) Delete(_ context.Context, category *models.Category) error {
	delete(m.db.categories, category.ID)
	return nil
}

type memProductStore struct{ db *memDB }

func (m memProductStore) ByID(_ context.Context, id, outletID string) (*models.Product, error) {
	p, ok := m.db.products[id]
	if !ok || p.OutletID != outletID {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (m memProductStore) BySKU(_ context.Context, sku, outletID string) (*models.Product, error) {
	for _, p := range m.db.products {
		if p.OutletID == outletID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m memProductStore) List(_ context.Context, outletID string, _ helper.Pagination) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range m.db.products {
		if p.OutletID == outletID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (m memProductStore) Create(_ context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	m.db.products[product.ID] = product
	return nil
}

func (m memProductStore) Save(_ context.Context, product *models.Product) error {
	m.db.products[product.ID] = product
	return nil
}

func (m memProductStore) Delete(_ context.Context, product *models.Product) error {
	delete(m.db.products, product.ID)
	return nil
}

type noopSender struct{ links []string }

func (n *noopSender) SendVerificationEmail(_ context.Context, _, link string) error {
	n.links = append(n.links, link)
	return nil
}

func testIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	issuer, err := token.NewIssuer(map[token.Context]token.Config{
		token.TenantAccess:  {Secret: "tenant-access-secret", ExpiresIn: time.Hour},
		token.TenantRefresh: {Secret: "tenant-refresh-secret", ExpiresIn: 72 * time.Hour},
		token.AdminAccess:   {Secret: "admin-access-secret", ExpiresIn: time.Hour},
		token.AdminRefresh:  {Secret: "admin-refresh-secret", ExpiresIn: 72 * time.Hour},
		token.EmailVerify:   {Secret: "verify-secret", ExpiresIn: 24 * time.Hour},
	})
	require.NoError(t, err)
	return issuer
}

// testEnv wires the full HTTP surface over in-memory stores.
type testEnv struct {
	db     *memDB
	issuer *token.Issuer
	mail   *noopSender
	auth   *services.AuthService
	mux    *http.ServeMux
}

func newTestEnv(t *testing.T, adminRegisterSecret string) *testEnv {
	t.Helper()
	db := newMemDB()
	issuer := testIssuer(t)
	mail := &noopSender{}
	logger := zap.NewNop().Sugar()

	users := memUserStore{db}
	resolver := identity.NewResolver(users, memAdminStore{db})

	auth := services.NewAuthService(
		users, memOutletStore{db}, memRoleStore{db}, memRefreshTokenStore{db},
		resolver, issuer, mail, logger, "http://localhost:8080",
	)
	admins := services.NewAdminService(memAdminStore{db}, issuer, adminRegisterSecret, logger)

	am := &middlewares.AuthMiddleware{Issuer: issuer, Resolver: resolver, Logger: logger}

	mux := http.NewServeMux()
	SetupAuthRoutes(mux, auth, am)
	SetupAdminRoutes(mux, admins, am)
	SetupUserRoutes(mux, services.NewUserService(users), am)
	SetupBackofficeUserRoutes(mux, services.NewBackofficeUserService(users), am)
	SetupProductRoutes(mux, services.NewProductService(memProductStore{db}, memCategoryStore{db}), am)
	SetupCategoryRoutes(mux, services.NewCategoryService(memCategoryStore{db}), am)
	SetupRoleRoutes(mux, services.NewRoleService(memRoleStore{db}), am)

	return &testEnv{db: db, issuer: issuer, mail: mail, auth: auth, mux: mux}
}
