package dto

type CreateProductDto struct {
	Name        string `json:"name" validate:"required,max=500"`
	Description string `json:"description" validate:"required"`
	Price       int64  `json:"price" validate:"required,gte=0"`
	Picture     string `json:"picture" validate:"omitempty"`
	Hpp         int64  `json:"hpp" validate:"omitempty,gte=0"`
	Stock       int64  `json:"stock" validate:"gte=0"`
	SKU         string `json:"sku" validate:"omitempty,max=100"`
	CategoryID  string `json:"category_id" validate:"omitempty,uuid"`
}

type UpdateProductDto struct {
	Name        string `json:"name" validate:"omitempty,max=500"`
	Description string `json:"description" validate:"omitempty"`
	Price       *int64 `json:"price" validate:"omitempty,gte=0"`
	Picture     string `json:"picture" validate:"omitempty"`
	Hpp         *int64 `json:"hpp" validate:"omitempty,gte=0"`
	Stock       *int64 `json:"stock" validate:"omitempty,gte=0"`
	SKU         string `json:"sku" validate:"omitempty,max=100"`
	CategoryID  string `json:"category_id" validate:"omitempty,uuid"`
	IsActive    *bool  `json:"is_active"`
}
