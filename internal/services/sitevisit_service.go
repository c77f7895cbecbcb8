package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
	"gorm.io/gorm"
)

// SiteVisitService is append-only: leads are created and read, never updated.
type SiteVisitService struct {
	db *gorm.DB
}

func NewSiteVisitService(db *gorm.DB) *SiteVisitService {
	return &SiteVisitService{db: db}
}

func (s *SiteVisitService) Create(v *models.SiteVisit) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if err := s.db.Create(v).Error; err != nil {
		return fmt.Errorf("failed to save site visit: %w", err)
	}
	return nil
}

func (s *SiteVisitService) List() ([]models.SiteVisit, error) {
	var visits []models.SiteVisit
	if err := s.db.Order("created_at desc").Find(&visits).Error; err != nil {
		return nil, fmt.Errorf("failed to list site visits: %w", err)
	}
	return visits, nil
}
