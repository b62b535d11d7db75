package services

import (
	"context"
	"errors"
	"fmt"

	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/models"
	"outlet-service/store"
)

// BackofficeUserService is cross-outlet user management for admins.
// Deleting an outlet's last user removes the outlet and everything under it.
type BackofficeUserService struct {
	users store.UserStore
}

func NewBackofficeUserService(users store.UserStore) *BackofficeUserService {
	return &BackofficeUserService{users: users}
}

func (s *BackofficeUserService) List(ctx context.Context, p helper.Pagination) ([]models.User, int64, error) {
	return s.users.ListAll(ctx, p)
}

func (s *BackofficeUserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.ByID(ctx, id)
}

func (s *BackofficeUserService) Create(ctx context.Context, payload dto.CreateUserBackofficeDto) (*models.User, error) {
	if _, err := s.users.ByEmail(ctx, payload.Email); err == nil {
		return nil, fmt.Errorf("%w: user with this email already exists", store.ErrConflict)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	digest, err := hashPassword(payload.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: digest,
		Picture:  payload.Picture,
		OutletID: payload.OutletID,
	}
	if payload.RoleID != "" {
		roleID := payload.RoleID
		user.RoleID = &roleID
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *BackofficeUserService) Update(ctx context.Context, id string, payload dto.UpdateUserDto) (*models.User, error) {
	user, err := s.users.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Password != "" {
		digest, err := hashPassword(payload.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = digest
	}
	if payload.RoleID != "" {
		roleID := payload.RoleID
		user.RoleID = &roleID
	}
	if payload.OutletID != "" {
		user.OutletID = payload.OutletID
	}
	if payload.Name != "" {
		user.Name = payload.Name
	}
	if payload.Email != "" {
		user.Email = payload.Email
	}
	if payload.Picture != "" {
		user.Picture = payload.Picture
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user; the returned flag reports whether the now-empty
// outlet was cleaned up along with its roles, categories and products.
func (s *BackofficeUserService) Delete(ctx context.Context, id string) (bool, error) {
	user, err := s.users.ByID(ctx, id)
	if err != nil {
		return false, err
	}
	if user.OutletID == "" {
		return false, fmt.Errorf("%w: outlet not found", store.ErrNotFound)
	}
	return s.users.DeleteWithOutletCleanup(ctx, user)
}
