package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var ProjectStatuses = []string{"active", "inactive", "completed", "upcoming"}

func ValidProjectStatus(status string) bool {
	for _, s := range ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// MediaFile is the metadata record the upload pipeline emits per stored file.
// URL doubles as the on-disk path relative to the static file root.
type MediaFile struct {
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimetype"`
	Order        int    `json:"order"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Location struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Pincode     string      `json:"pincode"`
	Coordinates Coordinates `json:"coordinates"`
}

type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type AreaRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

type BedroomRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type ContactInfo struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`
}

// Project is a property listing. Media arrays and the structured sub-objects
// are stored as jsonb; PublicLink is generated once and never changes.
type Project struct {
	ID              uuid.UUID                        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string                           `gorm:"size:255;not null" json:"name"`
	Description     string                           `gorm:"type:text;not null" json:"description"`
	Status          string                           `gorm:"size:20;default:'active';index:idx_projects_status_featured" json:"status"`
	Featured        bool                             `gorm:"default:false;index:idx_projects_status_featured" json:"featured"`
	Images          datatypes.JSONSlice[MediaFile]   `gorm:"type:jsonb" json:"images"`
	Videos          datatypes.JSONSlice[MediaFile]   `gorm:"type:jsonb" json:"videos"`
	Brochures       datatypes.JSONSlice[MediaFile]   `gorm:"type:jsonb" json:"brochures"`
	LayoutPlans     datatypes.JSONSlice[MediaFile]   `gorm:"type:jsonb" json:"layoutPlans"`
	ApprovalLetters datatypes.JSONSlice[MediaFile]   `gorm:"type:jsonb" json:"approvalLetters"`
	Location        datatypes.JSONType[Location]     `gorm:"type:jsonb" json:"location"`
	Price           datatypes.JSONType[PriceRange]   `gorm:"type:jsonb" json:"price"`
	Area            datatypes.JSONType[AreaRange]    `gorm:"type:jsonb" json:"area"`
	Bedrooms        datatypes.JSONType[BedroomRange] `gorm:"type:jsonb" json:"bedrooms"`
	ContactInfo     datatypes.JSONType[ContactInfo]  `gorm:"type:jsonb" json:"contactInfo"`
	PublicLink      string                           `gorm:"size:100;uniqueIndex" json:"publicLink"`
	IsPublic        bool                             `gorm:"default:false" json:"isPublic"`
	CreatedByID     *uuid.UUID                       `gorm:"type:uuid" json:"-"`
	CreatedBy       *User                            `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	UpdatedByID     *uuid.UUID                       `gorm:"type:uuid" json:"-"`
	UpdatedBy       *User                            `gorm:"foreignKey:UpdatedByID" json:"updatedBy,omitempty"`
	CreatedAt       time.Time                        `json:"createdAt"`
	UpdatedAt       time.Time                        `json:"updatedAt"`
}
