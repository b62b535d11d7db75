package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Outlet is the tenant boundary. Roles, users, categories and products all
// hang off exactly one outlet.
type Outlet struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"size:255"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Roles      []Role     `json:"-" gorm:"foreignKey:OutletID"`
	Users      []User     `json:"-" gorm:"foreignKey:OutletID"`
	Categories []Category `json:"-" gorm:"foreignKey:OutletID"`
	Products   []Product  `json:"-" gorm:"foreignKey:OutletID"`
}

func (o *Outlet) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
