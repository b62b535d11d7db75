package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModuleList is a role's permission strings, stored as jsonb.
type ModuleList []string

func (m ModuleList) Value() (driver.Value, error) {
	if m == nil {
		m = ModuleList{}
	}
	return json.Marshal(m)
}

func (m *ModuleList) Scan(value interface{}) error {
	if value == nil {
		*m = ModuleList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported module list type %T", value)
	}
	return json.Unmarshal(raw, m)
}

// Contains reports whether the exact module string is granted.
func (m ModuleList) Contains(name string) bool {
	for _, module := range m {
		if module == name {
			return true
		}
	}
	return false
}

// Role belongs to exactly one outlet and is never shared across outlets.
// A role with IsAdmin set is the outlet's root role and cannot be deleted.
type Role struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string     `json:"name" gorm:"size:100"`
	IsAdmin   bool       `json:"is_admin" gorm:"column:is_admin;default:false"`
	Modules   ModuleList `json:"modules" gorm:"type:jsonb;not null;default:'[]'"`
	OutletID  string     `json:"outlet_id" gorm:"type:uuid;column:outlet_id"`
	Outlet    *Outlet    `json:"-" gorm:"foreignKey:OutletID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// AllModules returns every permission string the system knows, granted to the
// default admin role created at registration.
func AllModules() ModuleList {
	entities := []string{"role", "user", "product", "category"}
	actions := []string{"create", "read", "update", "delete"}
	modules := make(ModuleList, 0, len(entities)*len(actions))
	for _, entity := range entities {
		for _, action := range actions {
			modules = append(modules, entity+":"+action)
		}
	}
	return modules
}
