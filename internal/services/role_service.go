package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound  = errors.New("role not found")
	ErrRoleNameTaken = errors.New("role name already exists")
)

type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

func (s *RoleService) List() ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.Order("name asc").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

func (s *RoleService) Get(id uuid.UUID) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to fetch role: %w", err)
	}
	return &role, nil
}

func (s *RoleService) Create(req *dto.RoleRequest) (*models.Role, error) {
	var existing models.Role
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, ErrRoleNameTaken
	}

	role := models.Role{
		ID:          uuid.New(),
		Name:        req.Name,
		Screens:     req.Screens,
		Permissions: req.Permissions,
	}
	if err := s.db.Create(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoleNameTaken
		}
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return &role, nil
}

func (s *RoleService) Update(id uuid.UUID, req *dto.RoleRequest) (*models.Role, error) {
	role, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	// Duplicate check excludes the role being updated.
	var existing models.Role
	if err := s.db.Where("name = ? AND id <> ?", req.Name, id).First(&existing).Error; err == nil {
		return nil, ErrRoleNameTaken
	}

	role.Name = req.Name
	role.Screens = req.Screens
	if req.Permissions != nil {
		role.Permissions = req.Permissions
	}
	if err := s.db.Save(role).Error; err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return role, nil
}

func (s *RoleService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Role{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoleNotFound
	}
	return nil
}
