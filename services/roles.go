package services

import (
	"context"
	"fmt"

	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/identity"
	"outlet-service/models"
	"outlet-service/store"
)

// RoleService manages roles strictly inside the caller's outlet. The
// outlet's admin role (is_admin) can never be deleted: the tenant's root
// role must survive.
type RoleService struct {
	roles store.RoleStore
}

func NewRoleService(roles store.RoleStore) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) findInOutlet(ctx context.Context, id string, current *identity.CurrentIdentity) (*models.Role, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, err
	}
	role, err := s.roles.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.OutletID != outletID {
		return nil, fmt.Errorf("%w: cross-outlet access forbidden", ErrForbidden)
	}
	return role, nil
}

func (s *RoleService) Create(ctx context.Context, payload dto.CreateRoleDto, current *identity.CurrentIdentity) (*models.Role, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, err
	}

	role := &models.Role{
		Name:     payload.Name,
		IsAdmin:  payload.IsAdmin,
		Modules:  models.ModuleList(payload.Modules),
		OutletID: outletID,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Get(ctx context.Context, id string, current *identity.CurrentIdentity) (*models.Role, error) {
	return s.findInOutlet(ctx, id, current)
}

func (s *RoleService) Update(ctx context.Context, id string, payload dto.UpdateRoleDto, current *identity.CurrentIdentity) (*models.Role, error) {
	role, err := s.findInOutlet(ctx, id, current)
	if err != nil {
		return nil, err
	}

	if payload.Name != "" {
		role.Name = payload.Name
	}
	if payload.Modules != nil {
		role.Modules = models.ModuleList(payload.Modules)
	}

	if err := s.roles.Save(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, id string, current *identity.CurrentIdentity) error {
	role, err := s.findInOutlet(ctx, id, current)
	if err != nil {
		return err
	}
	if role.IsAdmin {
		return fmt.Errorf("%w: admin role cannot be deleted", ErrForbidden)
	}
	return s.roles.Delete(ctx, role)
}

func (s *RoleService) List(ctx context.Context, p helper.Pagination, current *identity.CurrentIdentity) ([]models.Role, int64, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, 0, err
	}
	return s.roles.List(ctx, outletID, p)
}
