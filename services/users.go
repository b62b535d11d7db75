package services

import (
	"context"
	"errors"
	"fmt"

	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/identity"
	"outlet-service/models"
	"outlet-service/store"
)

// UserService is outlet-scoped user management for tenant callers.
// Non-admin callers only ever see users of their own outlet; tenant-admin
// roles skip the outlet filter on single-record lookups, as the source
// system does.
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) find(ctx context.Context, id string, current *identity.CurrentIdentity) (*models.User, error) {
	if current.Role != nil && !current.Role.IsAdmin && current.Outlet != nil {
		return s.users.ByIDInOutlet(ctx, id, current.Outlet.ID)
	}
	return s.users.ByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, payload dto.CreateUserDto, current *identity.CurrentIdentity) (*models.User, error) {
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
	}
	if current.Outlet != nil {
		user.OutletID = current.Outlet.ID
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

func (s *UserService) Get(ctx context.Context, id string, current *identity.CurrentIdentity) (*models.User, error) {
	return s.find(ctx, id, current)
}

func (s *UserService) Update(ctx context.Context, id string, payload dto.UpdateUserDto, current *identity.CurrentIdentity) (*models.User, error) {
	user, err := s.find(ctx, id, current)
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

func (s *UserService) Delete(ctx context.Context, id string, current *identity.CurrentIdentity) error {
	user, err := s.find(ctx, id, current)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, user)
}

func (s *UserService) List(ctx context.Context, p helper.Pagination, current *identity.CurrentIdentity) ([]models.User, int64, error) {
	if current.Outlet == nil {
		return nil, 0, ErrForbidden
	}
	return s.users.List(ctx, current.Outlet.ID, p)
}
