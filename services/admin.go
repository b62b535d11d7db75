package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/models"
	"outlet-service/store"
	"outlet-service/token"
)

// AdminService handles backoffice principals: secret-gated self-registration,
// login and admin CRUD. Admins have no outlet, no role and no email
// confirmation step; their registration gate is the pre-shared secret.
type AdminService struct {
	admins         store.AdminStore
	issuer         *token.Issuer
	registerSecret string
	logger         *zap.SugaredLogger
}

func NewAdminService(admins store.AdminStore, issuer *token.Issuer, registerSecret string, logger *zap.SugaredLogger) *AdminService {
	return &AdminService{
		admins:         admins,
		issuer:         issuer,
		registerSecret: registerSecret,
		logger:         logger,
	}
}

// AdminTokens is the register/login response payload.
type AdminTokens struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Admin        *models.Admin `json:"admin"`
}

// Register creates an admin when the caller presents the configured
// registration secret. An unset secret disables registration entirely.
func (s *AdminService) Register(ctx context.Context, payload dto.RegisterAdminDto) (*AdminTokens, error) {
	secret := strings.TrimSpace(s.registerSecret)
	if secret == "" {
		return nil, fmt.Errorf("%w: admin registration is not configured", ErrForbidden)
	}
	if strings.TrimSpace(payload.RegisterSecret) != secret {
		return nil, fmt.Errorf("%w: invalid register secret", ErrForbidden)
	}

	if _, err := s.admins.ByEmail(ctx, payload.Email); err == nil {
		return nil, fmt.Errorf("%w: admin with this email already exists", store.ErrConflict)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check existing admin: %w", err)
	}

	digest, err := hashPassword(payload.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := &models.Admin{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: digest,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return s.issueTokens(admin)
}

// Login authenticates an admin. The error never distinguishes unknown email
// from wrong password.
func (s *AdminService) Login(ctx context.Context, email, password string) (*AdminTokens, error) {
	admin, err := s.admins.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !verifyPassword(admin.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(admin)
}

func (s *AdminService) issueTokens(admin *models.Admin) (*AdminTokens, error) {
	claims := token.Claims{Subject: admin.ID, Email: admin.Email}
	accessToken, err := s.issuer.Issue(token.AdminAccess, claims)
	if err != nil {
		return nil, fmt.Errorf("issue admin access token: %w", err)
	}
	refreshToken, err := s.issuer.Issue(token.AdminRefresh, claims)
	if err != nil {
		return nil, fmt.Errorf("issue admin refresh token: %w", err)
	}
	return &AdminTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        admin,
	}, nil
}

func (s *AdminService) List(ctx context.Context, p helper.Pagination) ([]models.Admin, int64, error) {
	return s.admins.List(ctx, p)
}

func (s *AdminService) Get(ctx context.Context, id string) (*models.Admin, error) {
	return s.admins.ByID(ctx, id)
}

func (s *AdminService) Create(ctx context.Context, payload dto.CreateAdminDto) (*models.Admin, error) {
	if _, err := s.admins.ByEmail(ctx, payload.Email); err == nil {
		return nil, fmt.Errorf("%w: admin with this email already exists", store.ErrConflict)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check existing admin: %w", err)
	}

	digest, err := hashPassword(payload.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := &models.Admin{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: digest,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Update(ctx context.Context, id string, payload dto.UpdateAdminDto) (*models.Admin, error) {
	admin, err := s.admins.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Email != "" && payload.Email != admin.Email {
		if _, err := s.admins.ByEmail(ctx, payload.Email); err == nil {
			return nil, fmt.Errorf("%w: admin with this email already exists", store.ErrConflict)
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		admin.Email = payload.Email
	}
	if payload.Password != "" {
		digest, err := hashPassword(payload.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		admin.Password = digest
	}
	if payload.Name != "" {
		admin.Name = payload.Name
	}

	if err := s.admins.Save(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	admin, err := s.admins.ByID(ctx, id)
	if err != nil {
		return err
	}
	return s.admins.Delete(ctx, admin)
}
