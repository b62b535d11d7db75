package dto

type RegisterDto struct {
	Email      string `json:"email" validate:"required,email"`
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=8"`
	OutletName string `json:"outlet_name" validate:"required,max=255"`
}

type LoginDto struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ConfirmEmailDto struct {
	Token string `json:"token" validate:"required"`
}
