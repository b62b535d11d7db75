package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a tenant principal. Password may be empty for users provisioned
// before they set one; it is never serialized.
type User struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	IsConfirmed bool      `json:"is_confirmed" gorm:"column:is_confirmed;default:false"`
	Password    string    `json:"-" gorm:"default:null"`
	Picture     string    `json:"picture,omitempty" gorm:"default:null"`
	OutletID    string    `json:"outlet_id" gorm:"type:uuid;column:outlet_id"`
	Outlet      *Outlet   `json:"outlet,omitempty" gorm:"foreignKey:OutletID;constraint:OnDelete:CASCADE"`
	RoleID      *string   `json:"role_id,omitempty" gorm:"type:uuid;column:role_id"`
	Role        *Role     `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
