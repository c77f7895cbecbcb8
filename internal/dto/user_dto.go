package dto

import "github.com/google/uuid"

type CreateUserRequest struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Name     string    `json:"name"`
	Role     uuid.UUID `json:"role"`
}

// UserResponse is what user creation returns; no password hash, role as id.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Role     uuid.UUID `json:"role"`
}

type RoleRequest struct {
	Name        string   `json:"name"`
	Screens     []string `json:"screens"`
	Permissions []string `json:"permissions"`
}
