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

// ProductService is outlet-scoped product management. SKU uniqueness is
// checked per outlet; a product's category must belong to the same outlet.
type ProductService struct {
	products   store.ProductStore
	categories store.CategoryStore
}

func NewProductService(products store.ProductStore, categories store.CategoryStore) *ProductService {
	return &ProductService{products: products, categories: categories}
}

func outletIDOf(current *identity.CurrentIdentity) (string, error) {
	if current == nil || current.Outlet == nil {
		return "", ErrForbidden
	}
	return current.Outlet.ID, nil
}

func (s *ProductService) checkCategory(ctx context.Context, categoryID, outletID string) (*string, error) {
	if categoryID == "" {
		return nil, nil
	}
	if _, err := s.categories.ByID(ctx, categoryID, outletID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: category not found", store.ErrNotFound)
		}
		return nil, err
	}
	return &categoryID, nil
}

func (s *ProductService) Create(ctx context.Context, payload dto.CreateProductDto, current *identity.CurrentIdentity) (*models.Product, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, err
	}

	if payload.SKU != "" {
		if _, err := s.products.BySKU(ctx, payload.SKU, outletID); err == nil {
			return nil, fmt.Errorf("%w: product with this SKU already exists", store.ErrConflict)
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("check existing SKU: %w", err)
		}
	}

	categoryID, err := s.checkCategory(ctx, payload.CategoryID, outletID)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Picture:     payload.Picture,
		Hpp:         payload.Hpp,
		Stock:       payload.Stock,
		SKU:         payload.SKU,
		IsActive:    true,
		OutletID:    outletID,
		CategoryID:  categoryID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id string, current *identity.CurrentIdentity) (*models.Product, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, err
	}
	return s.products.ByID(ctx, id, outletID)
}

func (s *ProductService) Update(ctx context.Context, id string, payload dto.UpdateProductDto, current *identity.CurrentIdentity) (*models.Product, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, err
	}
	product, err := s.products.ByID(ctx, id, outletID)
	if err != nil {
		return nil, err
	}

	if payload.SKU != "" && payload.SKU != product.SKU {
		if existing, err := s.products.BySKU(ctx, payload.SKU, outletID); err == nil && existing.ID != product.ID {
			return nil, fmt.Errorf("%w: product with this SKU already exists", store.ErrConflict)
		} else if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		product.SKU = payload.SKU
	}
	if payload.CategoryID != "" {
		categoryID, err := s.checkCategory(ctx, payload.CategoryID, outletID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
	}
	if payload.Name != "" {
		product.Name = payload.Name
	}
	if payload.Description != "" {
		product.Description = payload.Description
	}
	if payload.Picture != "" {
		product.Picture = payload.Picture
	}
	if payload.Price != nil {
		product.Price = *payload.Price
	}
	if payload.Hpp != nil {
		product.Hpp = *payload.Hpp
	}
	if payload.Stock != nil {
		product.Stock = *payload.Stock
	}
	if payload.IsActive != nil {
		product.IsActive = *payload.IsActive
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string, current *identity.CurrentIdentity) error {
	outletID, err := outletIDOf(current)
	if err != nil {
		return err
	}
	product, err := s.products.ByID(ctx, id, outletID)
	if err != nil {
		return err
	}
	return s.products.Delete(ctx, product)
}

func (s *ProductService) List(ctx context.Context, p helper.Pagination, current *identity.CurrentIdentity) ([]models.Product, int64, error) {
	outletID, err := outletIDOf(current)
	if err != nil {
		return nil, 0, err
	}
	return s.products.List(ctx, outletID, p)
}
