package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken   = errors.New("username already exists")
	ErrPasswordTooWeak = errors.New("password must be at least 6 characters long")
	ErrMissingFields   = errors.New("all fields are required")
	ErrProtectedUser   = errors.New("cannot delete super admin users")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" || req.Name == "" || req.Role == uuid.Nil {
		return nil, ErrMissingFields
	}
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooWeak
	}

	var existing models.User
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
		RoleID:   req.Role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Preload("Role").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes a user unless their role is superadmin; bearers of that role
// are protected.
func (s *UserService) Delete(id uuid.UUID) error {
	var user models.User
	if err := s.db.Preload("Role").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Role != nil && user.Role.Name == models.RoleSuperAdmin {
		return ErrProtectedUser
	}

	return s.db.Delete(&user).Error
}
