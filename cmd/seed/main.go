// Seeds the default roles, users and a couple of sample projects. Run with
// -reset to wipe existing roles/users/projects first.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/config"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/database"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/logging"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

func main() {
	logging.Setup()
	_ = godotenv.Load()

	reset := flag.Bool("reset", false, "delete existing roles, users and projects first")
	flag.Parse()

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	db := database.DB

	if *reset {
		for _, m := range []interface{}{&models.Message{}, &models.ChatParticipant{}, &models.Chat{}, &models.Project{}, &models.User{}, &models.Role{}} {
			if err := db.Where("1 = 1").Delete(m).Error; err != nil {
				slog.Error("reset failed", "error", err)
				os.Exit(1)
			}
		}
		slog.Info("existing data cleared")
	}

	roles := map[string][]string{
		"superadmin": {"Dashboard", "Leads", "SiteVisits", "Properties", "Bookings", "Payments", "Chat", "SiteStaff", "Reports"},
		"manager":    {"Dashboard", "Leads", "SiteVisits", "Properties", "Bookings", "Payments", "Chat"},
		"executive":  {"Leads", "SiteVisits", "Properties", "Chat"},
	}

	roleIDs := make(map[string]uuid.UUID, len(roles))
	for name, screens := range roles {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			slog.Error("failed to seed role", "role", name, "error", err)
			os.Exit(1)
		}
		role.Screens = screens
		if err := db.Save(&role).Error; err != nil {
			slog.Error("failed to update role screens", "role", name, "error", err)
			os.Exit(1)
		}
		roleIDs[name] = role.ID
	}
	slog.Info("roles seeded", "count", len(roles))

	users := []struct {
		username, password, name, role string
	}{
		{"admin", "admin123", "Super Admin", "superadmin"},
		{"manager", "manager123", "Manager Mohan", "manager"},
		{"executive", "exec123", "Executive Raj", "executive"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("failed to hash password", "error", err)
			os.Exit(1)
		}
		user := models.User{
			Username: u.username,
			Password: string(hash),
			Name:     u.name,
			RoleID:   roleIDs[u.role],
		}
		if err := db.Where("username = ?", u.username).FirstOrCreate(&user).Error; err != nil {
			slog.Error("failed to seed user", "username", u.username, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("users seeded", "count", len(users))

	adminID := uuid.Nil
	var admin models.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err == nil {
		adminID = admin.ID
	}

	projects := []models.Project{
		{
			Name:        "Luxury Heights Residency",
			Description: "Premium residential project with world-class amenities and modern architecture.",
			Status:      "active",
			Featured:    true,
			IsPublic:    true,
			Images: datatypes.JSONSlice[models.MediaFile]{
				{URL: "/uploads/media/sample-project-1-main.jpg", OriginalName: "main.jpg", MimeType: "image/jpeg", Order: 0},
				{URL: "/uploads/media/sample-project-1-amenities.jpg", OriginalName: "amenities.jpg", MimeType: "image/jpeg", Order: 1},
			},
			Brochures: datatypes.JSONSlice[models.MediaFile]{
				{URL: "/uploads/documents/luxury-heights-brochure.pdf", OriginalName: "brochure.pdf", MimeType: "application/pdf", Order: 0},
			},
			Location: datatypes.NewJSONType(models.Location{
				Address: "MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001",
			}),
			Price:    datatypes.NewJSONType(models.PriceRange{Min: 8500000, Max: 15000000, Currency: "INR"}),
			Area:     datatypes.NewJSONType(models.AreaRange{Min: 1200, Max: 2400, Unit: "sqft"}),
			Bedrooms: datatypes.NewJSONType(models.BedroomRange{Min: 2, Max: 4}),
			ContactInfo: datatypes.NewJSONType(models.ContactInfo{
				Phone: "+91 98450 00001", Email: "sales@luxuryheights.example", Whatsapp: "+91 98450 00001",
			}),
		},
		{
			Name:        "Green Valley Villas",
			Description: "Gated villa community surrounded by landscaped gardens, upcoming launch.",
			Status:      "upcoming",
			IsPublic:    true,
			Location: datatypes.NewJSONType(models.Location{
				Address: "Sarjapur Road", City: "Bengaluru", State: "Karnataka", Pincode: "562125",
			}),
			Price:    datatypes.NewJSONType(models.PriceRange{Min: 12000000, Max: 22000000, Currency: "INR"}),
			Area:     datatypes.NewJSONType(models.AreaRange{Min: 2000, Max: 3600, Unit: "sqft"}),
			Bedrooms: datatypes.NewJSONType(models.BedroomRange{Min: 3, Max: 5}),
		},
	}

	for i := range projects {
		p := &projects[i]
		p.PublicLink = services.NewPublicSlug()
		if adminID != uuid.Nil {
			p.CreatedByID = &adminID
		}
		var existing models.Project
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(p).Error; err != nil {
			slog.Error("failed to seed project", "project", p.Name, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("sample projects seeded", "count", len(projects))
}
