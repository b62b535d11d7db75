package dto

type CreateUserDto struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	RoleID          string `json:"role_id" validate:"omitempty,uuid"`
	Picture         string `json:"picture" validate:"omitempty"`
}

type UpdateUserDto struct {
	Name     string `json:"name" validate:"omitempty"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	RoleID   string `json:"role_id" validate:"omitempty,uuid"`
	OutletID string `json:"outlet_id" validate:"omitempty,uuid"`
	Picture  string `json:"picture" validate:"omitempty"`
}

type CreateUserBackofficeDto struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	OutletID string `json:"outlet_id" validate:"required,uuid"`
	RoleID   string `json:"role_id" validate:"omitempty,uuid"`
	Picture  string `json:"picture" validate:"omitempty"`
}
