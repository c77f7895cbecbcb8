package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
)

type ProjectListResponse struct {
	Projects    []models.Project `json:"projects"`
	TotalPages  int64            `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Total       int64            `json:"total"`
}

// PublicProject is the customer-facing view: internal bookkeeping
// (createdBy/updatedBy) stripped.
type PublicProject struct {
	ID              uuid.UUID           `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Status          string              `json:"status"`
	Featured        bool                `json:"featured"`
	Images          []models.MediaFile  `json:"images"`
	Videos          []models.MediaFile  `json:"videos"`
	Brochures       []models.MediaFile  `json:"brochures"`
	LayoutPlans     []models.MediaFile  `json:"layoutPlans"`
	ApprovalLetters []models.MediaFile  `json:"approvalLetters"`
	Location        models.Location     `json:"location"`
	Price           models.PriceRange   `json:"price"`
	Area            models.AreaRange    `json:"area"`
	Bedrooms        models.BedroomRange `json:"bedrooms"`
	ContactInfo     models.ContactInfo  `json:"contactInfo"`
	PublicLink      string              `json:"publicLink"`
	IsPublic        bool                `json:"isPublic"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func NewPublicProject(p *models.Project) PublicProject {
	return PublicProject{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Status:          p.Status,
		Featured:        p.Featured,
		Images:          p.Images,
		Videos:          p.Videos,
		Brochures:       p.Brochures,
		LayoutPlans:     p.LayoutPlans,
		ApprovalLetters: p.ApprovalLetters,
		Location:        p.Location.Data(),
		Price:           p.Price.Data(),
		Area:            p.Area.Data(),
		Bedrooms:        p.Bedrooms.Data(),
		ContactInfo:     p.ContactInfo.Data(),
		PublicLink:      p.PublicLink,
		IsPublic:        p.IsPublic,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type ShareLinksResponse struct {
	Whatsapp   string `json:"whatsapp"`
	Email      string `json:"email"`
	PublicLink string `json:"publicLink"`
}
