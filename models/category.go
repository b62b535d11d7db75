package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"size:255"`
	OutletID  string    `json:"outlet_id" gorm:"type:uuid;column:outlet_id"`
	Outlet    *Outlet   `json:"-" gorm:"foreignKey:OutletID;constraint:OnDelete:CASCADE"`
	Products  []Product `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
