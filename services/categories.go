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

// CategoryService is outlet-scoped category management with per-outlet name
// uniqueness.
type CategoryService struct {
	categories store.CategoryStore
}

func NewCategoryService(categories store.CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) checkName(ctx context.Context, name, outletID, excludeID string) error {
	existing, err := s.categories.ByName(ctx, name, outletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return fmt.Errorf("%w: category with this name already exists", store.ErrConflict)
}

func (s *CategoryService) Create(ctx context.Context, payload dto.CreateCategoryDto, current *identity.CurrentIdentity) (*models.Category, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, payload.Name, outletID, ""); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:     payload.Name,
		OutletID: outletID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id string, current *identity.CurrentIdentity) (*models.Category, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, err
	}
	return s.categories.ByID(ctx, id, outletID)
}

func (s *CategoryService) Update(ctx context.Context, id string, payload dto.UpdateCategoryDto, current *identity.CurrentIdentity) (*models.Category, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.ByID(ctx, id, outletID)
	if err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, payload.Name, outletID, category.ID); err != nil {
		return nil, err
	}

	category.Name = payload.Name
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string, current *identity.CurrentIdentity) error {
	outletID, err := outletIDOf(current)
	if err != nil {
		return err
	}
	category, err := s.categories.ByID(ctx, id, outletID)
	if err != nil {
		return err
	}
	return s.categories.Delete(ctx, category)
}

func (s *CategoryService) List(ctx context.Context, p helper.Pagination, current *identity.CurrentIdentity) ([]models.Category, int64, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, 0, err
	}
	return s.categories.List(ctx, outletID, p)
}
