package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/upload"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidStatus   = errors.New("invalid project status")
)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewPublicSlug generates a sharing slug: "project-{26 base36 chars}-{ms}".
// Slugs are random, not content-derived; two identical projects get
// different slugs.
func NewPublicSlug() string {
	b := make([]byte, 26)
	for i := range b {
		b[i] = slugAlphabet[rand.IntN(len(slugAlphabet))]
	}
	return fmt.Sprintf("project-%s-%d", b, time.Now().UnixMilli())
}

type ProjectFilter struct {
	Status     string
	Featured   *bool
	City       string
	PublicOnly bool
	Page       int
	Limit      int
}

// ProjectUpdate carries a partial-field merge; nil means "leave unchanged".
// Media categories present in Media replace the stored array wholesale.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *string
	Featured    *bool
	IsPublic    *bool
	Location    *models.Location
	Price       *models.PriceRange
	Area        *models.AreaRange
	Bedrooms    *models.BedroomRange
	ContactInfo *models.ContactInfo
	Media       upload.Result
	UpdatedBy   *uuid.UUID
}

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// Create persists a new project, assigning a public slug when none is set.
func (s *ProjectService) Create(p *models.Project) error {
	if p.Status == "" {
		p.Status = "active"
	}
	if !models.ValidProjectStatus(p.Status) {
		return ErrInvalidStatus
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PublicLink == "" {
		p.PublicLink = NewPublicSlug()
	}
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (s *ProjectService) List(f ProjectFilter) (*dto.ProjectListResponse, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	query := s.db.Model(&models.Project{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Featured != nil {
		query = query.Where("featured = ?", *f.Featured)
	}
	if f.City != "" {
		query = query.Where("location->>'city' ILIKE ?", "%"+f.City+"%")
	}
	if f.PublicOnly {
		query = query.Where("is_public = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	var projects []models.Project
	err := query.
		Preload("CreatedBy").Preload("UpdatedBy").
		Order("created_at desc").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	totalPages := total / int64(f.Limit)
	if total%int64(f.Limit) != 0 {
		totalPages++
	}

	return &dto.ProjectListResponse{
		Projects:    projects,
		TotalPages:  totalPages,
		CurrentPage: f.Page,
		Total:       total,
	}, nil
}

// Featured returns up to 10 featured, active, public projects, most recently
// updated first.
func (s *ProjectService) Featured() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Where("featured = ? AND status = ? AND is_public = ?", true, "active", true).
		Order("updated_at desc").
		Limit(10).
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(id uuid.UUID) (*models.Project, error) {
	var p models.Project
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return &p, nil
}

// GetPublic fetches a project by its sharing slug; non-public projects stay
// hidden even with a valid slug.
func (s *ProjectService) GetPublic(publicLink string) (*models.Project, error) {
	var p models.Project
	err := s.db.Where("public_link = ? AND is_public = ?", publicLink, true).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return &p, nil
}

// Update applies a partial merge. The slug is immutable here; only media
// categories with new files are replaced.
func (s *ProjectService) Update(id uuid.UUID, upd *ProjectUpdate) (*models.Project, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Status != nil {
		if !models.ValidProjectStatus(*upd.Status) {
			return nil, ErrInvalidStatus
		}
		p.Status = *upd.Status
	}
	if upd.Featured != nil {
		p.Featured = *upd.Featured
	}
	if upd.IsPublic != nil {
		p.IsPublic = *upd.IsPublic
	}
	if upd.Location != nil {
		p.Location = datatypes.NewJSONType(*upd.Location)
	}
	if upd.Price != nil {
		p.Price = datatypes.NewJSONType(*upd.Price)
	}
	if upd.Area != nil {
		p.Area = datatypes.NewJSONType(*upd.Area)
	}
	if upd.Bedrooms != nil {
		p.Bedrooms = datatypes.NewJSONType(*upd.Bedrooms)
	}
	if upd.ContactInfo != nil {
		p.ContactInfo = datatypes.NewJSONType(*upd.ContactInfo)
	}
	if upd.Media.Has(upload.FieldImages) {
		p.Images = upd.Media[upload.FieldImages]
	}
	if upd.Media.Has(upload.FieldVideos) {
		p.Videos = upd.Media[upload.FieldVideos]
	}
	if upd.Media.Has(upload.FieldBrochures) {
		p.Brochures = upd.Media[upload.FieldBrochures]
	}
	if upd.Media.Has(upload.FieldLayoutPlans) {
		p.LayoutPlans = upd.Media[upload.FieldLayoutPlans]
	}
	if upd.Media.Has(upload.FieldApprovalLetters) {
		p.ApprovalLetters = upd.Media[upload.FieldApprovalLetters]
	}
	if upd.UpdatedBy != nil {
		p.UpdatedByID = upd.UpdatedBy
	}

	if err := s.db.Save(p).Error; err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	var out models.Project
	if err := s.db.Preload("CreatedBy").Preload("UpdatedBy").First(&out, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	return &out, nil
}

func (s *ProjectService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// ShareLinks derives sharing URLs from the caller's scheme and host; nothing
// is persisted.
func (s *ProjectService) ShareLinks(id uuid.UUID, scheme, host string) (*dto.ShareLinksResponse, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	publicURL := fmt.Sprintf("%s://%s/projects/public/%s", scheme, host, p.PublicLink)
	return buildShareLinks(p.Name, publicURL), nil
}

func buildShareLinks(name, publicURL string) *dto.ShareLinksResponse {
	return &dto.ShareLinksResponse{
		Whatsapp:   "https://wa.me/?text=" + url.QueryEscape("Check out this project: "+name+" - "+publicURL),
		Email:      "mailto:?subject=" + url.QueryEscape(name) + "&body=" + url.QueryEscape("Check out this project: "+publicURL),
		PublicLink: publicURL,
	}
}
