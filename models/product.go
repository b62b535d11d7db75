package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"size:500"`
	Description string    `json:"description" gorm:"type:text"`
	Price       int64     `json:"price"`
	Picture     string    `json:"picture,omitempty" gorm:"type:text;default:null"`
	Hpp         int64     `json:"hpp,omitempty" gorm:"default:null"`
	Stock       int64     `json:"stock"`
	SKU         string    `json:"sku,omitempty" gorm:"column:sku;default:null"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	OutletID    string    `json:"outlet_id" gorm:"type:uuid;column:outlet_id"`
	Outlet      *Outlet   `json:"-" gorm:"foreignKey:OutletID"`
	CategoryID  *string   `json:"category_id,omitempty" gorm:"type:uuid;column:category_id"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
