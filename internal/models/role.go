package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const RoleSuperAdmin = "superadmin"

// Role grants a set of UI screens and optional fine-grained permissions.
type Role struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string                      `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Screens     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"screens"`
	Permissions datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"permissions"`
}

func (r *Role) HasScreen(screen string) bool {
	for _, s := range r.Screens {
		if s == screen {
			return true
		}
	}
	return false
}

func (r *Role) HasPermission(perm string) bool {
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
