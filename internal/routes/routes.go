package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/config"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/handlers"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/middleware"
	"gorm.io/gorm"
)

// Screen identifiers gating management routes server-side; they mirror the
// screens the seeded roles carry.
const (
	screenProperties = "Properties"
	screenSiteVisits = "SiteVisits"
	screenSiteStaff  = "SiteStaff"
	screenChat       = "Chat"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	roleHandler *handlers.RoleHandler,
	projectHandler *handlers.ProjectHandler,
	siteVisitHandler *handlers.SiteVisitHandler,
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from server")
	})
	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Login gets a stricter per-IP rate limit than the rest of the API.
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)

	// User and role management: token plus the SiteStaff screen.
	users := app.Group("/users", middleware.JWTProtected(cfg), middleware.ScreenRequired(db, screenSiteStaff))
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.Delete)

	roles := app.Group("/roles", middleware.JWTProtected(cfg), middleware.ScreenRequired(db, screenSiteStaff))
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.Get)
	roles.Post("/", roleHandler.Create)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	// Customer-facing project reads are public; mutations need the
	// Properties screen. Literal routes before the :id wildcard.
	projects := app.Group("/projects")
	projects.Get("/", projectHandler.List)
	projects.Get("/featured", projectHandler.Featured)
	projects.Get("/public/:publicLink", projectHandler.GetPublic)
	projects.Post("/", middleware.JWTProtected(cfg), middleware.ScreenRequired(db, screenProperties), projectHandler.Create)
	projects.Put("/:id", middleware.JWTProtected(cfg), middleware.ScreenRequired(db, screenProperties), projectHandler.Update)
	projects.Delete("/:id", middleware.JWTProtected(cfg), middleware.ScreenRequired(db, screenProperties), projectHandler.Delete)
	projects.Post("/:id/share", middleware.JWTProtected(cfg), middleware.ScreenRequired(db, screenProperties), projectHandler.Share)
	projects.Get("/:id", projectHandler.Get)

	// Lead capture is public; reading leads is not.
	siteVisits := app.Group("/site-visits")
	siteVisits.Post("/", siteVisitHandler.Create)
	siteVisits.Get("/", middleware.JWTProtected(cfg), middleware.ScreenRequired(db, screenSiteVisits), siteVisitHandler.List)

	chat := app.Group("/chat", middleware.JWTProtected(cfg), middleware.ScreenRequired(db, screenChat))
	chat.Get("/conversations/:userId", chatHandler.Conversations)
	chat.Post("/conversations", chatHandler.CreateConversation)
	chat.Post("/conversations/:chatId/read", chatHandler.MarkRead)
	chat.Get("/messages/:chatId", chatHandler.Messages)
	chat.Post("/messages", chatHandler.SendMessage)
	chat.Get("/users/:currentUserId", chatHandler.Users)
}
