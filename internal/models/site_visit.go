package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteVisit is an append-only lead capture record. ProjectName is free text,
// not a foreign key.
type SiteVisit struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:255" json:"name"`
	PhoneNumber string    `gorm:"size:20" json:"phoneNumber"`
	Occupation  string    `gorm:"size:100" json:"occupation"`
	Location    string    `gorm:"size:255" json:"location"`
	TimeOfVisit time.Time `json:"timeOfVisit"`
	ProjectName string    `gorm:"size:255" json:"projectName"`
	Scheduled   bool      `gorm:"default:false" json:"scheduled"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}
