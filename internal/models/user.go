package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a CRM team member. The password column holds a bcrypt hash and is
// never serialized.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Name      string    `gorm:"size:255" json:"name"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"roleId"`
	Role      *Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
