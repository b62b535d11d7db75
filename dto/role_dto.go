package dto

type CreateRoleDto struct {
	Name    string   `json:"name" validate:"required,max=100"`
	IsAdmin bool     `json:"is_admin"`
	Modules []string `json:"modules" validate:"required,dive,required"`
}

type UpdateRoleDto struct {
	Name    string   `json:"name" validate:"omitempty,max=100"`
	Modules []string `json:"modules" validate:"omitempty,dive,required"`
}
