package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"outlet-service/helper"
	"outlet-service/models"
)

// Store hands out per-entity repository views backed by one gorm connection.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() UserStore                 { return userStore{s.db} }
func (s *Store) Admins() AdminStore               { return adminStore{s.db} }
func (s *Store) Outlets() OutletStore             { return outletStore{s.db} }
func (s *Store) Roles() RoleStore                 { return roleStore{s.db} }
func (s *Store) Categories() CategoryStore        { return categoryStore{s.db} }
func (s *Store) Products() ProductStore           { return productStore{s.db} }
func (s *Store) RefreshTokens() RefreshTokenStore { return refreshTokenStore{s.db} }

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

// --- users ---

type userStore struct{ db *gorm.DB }

func (s userStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Role").Preload("Outlet").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s userStore) ByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Role").Preload("Outlet").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s userStore) ByIDInOutlet(ctx context.Context, id, outletID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Role").
		Where("id = ? AND outlet_id = ?", id, outletID).
		First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s userStore) List(ctx context.Context, outletID string, p helper.Pagination) ([]models.User, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.User{}).Where("outlet_id = ?", outletID)
	if p.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+p.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	err := query.Preload("Role").
		Limit(p.Limit).Offset(p.Offset()).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s userStore) ListAll(ctx context.Context, p helper.Pagination) ([]models.User, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.User{})
	if p.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+p.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	err := query.Preload("Role").Preload("Outlet").
		Limit(p.Limit).Offset(p.Offset()).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s userStore) Create(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s userStore) Save(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Save(user).Error)
}

func (s userStore) Delete(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Delete(user).Error)
}

func (s userStore) DeleteWithOutletCleanup(ctx context.Context, user *models.User) (bool, error) {
	outletID := user.OutletID
	if err := s.db.WithContext(ctx).Delete(user).Error; err != nil {
		return false, translate(err)
	}
	if outletID == "" {
		return false, nil
	}

	var remaining int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("outlet_id = ?", outletID).
		Count(&remaining).Error
	if err != nil {
		return false, err
	}
	if remaining > 0 {
		return false, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("outlet_id = ?", outletID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("outlet_id = ?", outletID).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("outlet_id = ?", outletID).Delete(&models.Role{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", outletID).Delete(&models.Outlet{}).Error
	})
	if err != nil {
		return false, fmt.Errorf("outlet cleanup: %w", err)
	}
	return true, nil
}

// --- admins ---

type adminStore struct{ db *gorm.DB }

func (s adminStore) ByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (s adminStore) ByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (s adminStore) List(ctx context.Context, p helper.Pagination) ([]models.Admin, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Admin{})
	if p.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+p.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var admins []models.Admin
	err := query.Limit(p.Limit).Offset(p.Offset()).
		Order("created_at DESC").
		Find(&admins).Error
	if err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

func (s adminStore) Create(ctx context.Context, admin *models.Admin) error {
	return translate(s.db.WithContext(ctx).Create(admin).Error)
}

func (s adminStore) Save(ctx context.Context, admin *models.Admin) error {
	return translate(s.db.WithContext(ctx).Save(admin).Error)
}

func (s adminStore) Delete(ctx context.Context, admin *models.Admin) error {
	return translate(s.db.WithContext(ctx).Delete(admin).Error)
}

// --- outlets ---

type outletStore struct{ db *gorm.DB }

func (s outletStore) ByID(ctx context.Context, id string) (*models.Outlet, error) {
	var outlet models.Outlet
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&outlet).Error
	if err != nil {
		return nil, translate(err)
	}
	return &outlet, nil
}

func (s outletStore) Create(ctx context.Context, outlet *models.Outlet) error {
	return translate(s.db.WithContext(ctx).Create(outlet).Error)
}

// --- roles ---

type roleStore struct{ db *gorm.DB }

func (s roleStore) ByID(ctx context.Context, id string) (*models.Role, error) {
	var role models.Role
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&role).Error
	if err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

func (s roleStore) List(ctx context.Context, outletID string, p helper.Pagination) ([]models.Role, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Role{}).Where("outlet_id = ?", outletID)
	if p.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+p.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var roles []models.Role
	err := query.Limit(p.Limit).Offset(p.Offset()).
		Order("created_at ASC").
		Find(&roles).Error
	if err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

func (s roleStore) Create(ctx context.Context, role *models.Role) error {
	return translate(s.db.WithContext(ctx).Create(role).Error)
}

func (s roleStore) Save(ctx context.Context, role *models.Role) error {
	return translate(s.db.WithContext(ctx).Save(role).Error)
}

func (s roleStore) Delete(ctx context.Context, role *models.Role) error {
	return translate(s.db.WithContext(ctx).Delete(role).Error)
}

// --- categories ---

type categoryStore struct{ db *gorm.DB }

func (s categoryStore) ByID(ctx context.Context, id, outletID string) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).
		Where("id = ? AND outlet_id = ?", id, outletID).
		First(&category).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s categoryStore) ByName(ctx context.Context, name, outletID string) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).
		Where("name = ? AND outlet_id = ?", name, outletID).
		First(&category).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s categoryStore) List(ctx context.Context, outletID string, p helper.Pagination) ([]models.Category, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Category{}).Where("outlet_id = ?", outletID)
	if p.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+p.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var categories []models.Category
	err := query.Limit(p.Limit).Offset(p.Offset()).
		Order("created_at DESC").
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (s categoryStore) Create(ctx context.Context, category *models.Category) error {
	return translate(s.db.WithContext(ctx).Create(category).Error)
}

func (s categoryStore) Save(ctx context.Context, category *models.Category) error {
	return translate(s.db.WithContext(ctx).Save(category).Error)
}

func (s categoryStore) Delete(ctx context.Context, category *models.Category) error {
	return translate(s.db.WithContext(ctx).Delete(category).Error)
}

// --- products ---

type productStore struct{ db *gorm.DB }

func (s productStore) ByID(ctx context.Context, id, outletID string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND outlet_id = ?", id, outletID).
		First(&product).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s productStore) BySKU(ctx context.Context, sku, outletID string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Where("sku = ? AND outlet_id = ?", sku, outletID).
		First(&product).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s productStore) List(ctx context.Context, outletID string, p helper.Pagination) ([]models.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{}).Where("outlet_id = ?", outletID)
	if p.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+p.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var products []models.Product
	err := query.Preload("Category").
		Limit(p.Limit).Offset(p.Offset()).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s productStore) Create(ctx context.Context, product *models.Product) error {
	return translate(s.db.WithContext(ctx).Create(product).Error)
}

func (s productStore) Save(ctx context.Context, product *models.Product) error {
	return translate(s.db.WithContext(ctx).Save(product).Error)
}

func (s productStore) Delete(ctx context.Context, product *models.Product) error {
	return translate(s.db.WithContext(ctx).Delete(product).Error)
}

// --- refresh tokens ---

type refreshTokenStore struct{ db *gorm.DB }

func (s refreshTokenStore) ByID(ctx context.Context, id string) (*models.RefreshToken, error) {
	var rec models.RefreshToken
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (s refreshTokenStore) Create(ctx context.Context, rec *models.RefreshToken) error {
	return translate(s.db.WithContext(ctx).Create(rec).Error)
}

func (s refreshTokenStore) Delete(ctx context.Context, id string) error {
	return translate(s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.RefreshToken{}).Error)
}

func (s refreshTokenStore) DeleteForUser(ctx context.Context, userID string) error {
	return translate(s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error)
}
