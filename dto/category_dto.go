package dto

type CreateCategoryDto struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateCategoryDto struct {
	Name string `json:"name" validate:"required,max=255"`
}
