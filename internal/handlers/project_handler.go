package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/middleware"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/services"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/upload"
	"gorm.io/datatypes"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	pipeline       *upload.Pipeline
}

func NewProjectHandler(projectService *services.ProjectService, pipeline *upload.Pipeline) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, pipeline: pipeline}
}

// Create handles POST /projects: multipart body with text fields, five
// JSON-encoded form fields and optional file fields per category.
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "multipart/form-data body required",
		})
	}

	name := c.FormValue("name")
	description := c.FormValue("description")
	if name == "" || description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Name and description are required",
		})
	}

	location, err := decodeJSONField[models.Location](c.FormValue("location"), "location")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	price, err := decodeJSONField[models.PriceRange](c.FormValue("price"), "price")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	area, err := decodeJSONField[models.AreaRange](c.FormValue("area"), "area")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	bedrooms, err := decodeJSONField[models.BedroomRange](c.FormValue("bedrooms"), "bedrooms")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	contactInfo, err := decodeJSONField[models.ContactInfo](c.FormValue("contactInfo"), "contactInfo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	media, err := h.pipeline.Ingest(form)
	if err != nil {
		var ve *upload.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ve.Error()})
		}
		return serverError(c, "failed to store uploaded files", err)
	}

	p := models.Project{
		Name:            name,
		Description:     description,
		Status:          c.FormValue("status"),
		Featured:        c.FormValue("featured") == "true",
		IsPublic:        c.FormValue("isPublic") == "true",
		Images:          media[upload.FieldImages],
		Videos:          media[upload.FieldVideos],
		Brochures:       media[upload.FieldBrochures],
		LayoutPlans:     media[upload.FieldLayoutPlans],
		ApprovalLetters: media[upload.FieldApprovalLetters],
	}
	if location != nil {
		p.Location = datatypes.NewJSONType(*location)
	}
	if price != nil {
		p.Price = datatypes.NewJSONType(*price)
	}
	if area != nil {
		p.Area = datatypes.NewJSONType(*area)
	}
	if bedrooms != nil {
		p.Bedrooms = datatypes.NewJSONType(*bedrooms)
	}
	if contactInfo != nil {
		p.ContactInfo = datatypes.NewJSONType(*contactInfo)
	}
	if userID, err := middleware.UserID(c); err == nil {
		p.CreatedByID = &userID
	}

	if err := h.projectService.Create(&p); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return serverError(c, "failed to create project", err)
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	filter := services.ProjectFilter{
		Status:     c.Query("status"),
		City:       c.Query("city"),
		PublicOnly: c.Query("public") == "true",
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
	}
	if q := c.Query("featured"); q != "" {
		featured := q == "true"
		filter.Featured = &featured
	}

	resp, err := h.projectService.List(filter)
	if err != nil {
		return serverError(c, "failed to list projects", err)
	}
	return c.JSON(resp)
}

func (h *ProjectHandler) Featured(c *fiber.Ctx) error {
	projects, err := h.projectService.Featured()
	if err != nil {
		return serverError(c, "failed to fetch featured projects", err)
	}

	out := make([]dto.PublicProject, 0, len(projects))
	for i := range projects {
		out = append(out, dto.NewPublicProject(&projects[i]))
	}
	return c.JSON(out)
}

// Get returns the customer view: bookkeeping fields stripped.
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid project id",
		})
	}

	p, err := h.projectService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Project not found",
			})
		}
		return serverError(c, "failed to fetch project", err)
	}
	return c.JSON(dto.NewPublicProject(p))
}

func (h *ProjectHandler) GetPublic(c *fiber.Ctx) error {
	p, err := h.projectService.GetPublic(c.Params("publicLink"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Project not found",
			})
		}
		return serverError(c, "failed to fetch project", err)
	}
	return c.JSON(dto.NewPublicProject(p))
}

// Update handles PUT /projects/:id: a partial multipart merge. Newly uploaded
// files replace their category wholesale; absent fields stay untouched.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid project id",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "multipart/form-data body required",
		})
	}

	upd := services.ProjectUpdate{
		Name:        formString(form, "name"),
		Description: formString(form, "description"),
		Status:      formString(form, "status"),
	}
	if raw := formString(form, "featured"); raw != nil {
		featured := *raw == "true"
		upd.Featured = &featured
	}
	if raw := formString(form, "isPublic"); raw != nil {
		isPublic := *raw == "true"
		upd.IsPublic = &isPublic
	}

	if upd.Location, err = decodeJSONField[models.Location](c.FormValue("location"), "location"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if upd.Price, err = decodeJSONField[models.PriceRange](c.FormValue("price"), "price"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if upd.Area, err = decodeJSONField[models.AreaRange](c.FormValue("area"), "area"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if upd.Bedrooms, err = decodeJSONField[models.BedroomRange](c.FormValue("bedrooms"), "bedrooms"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if upd.ContactInfo, err = decodeJSONField[models.ContactInfo](c.FormValue("contactInfo"), "contactInfo"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	media, err := h.pipeline.Ingest(form)
	if err != nil {
		var ve *upload.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ve.Error()})
		}
		return serverError(c, "failed to store uploaded files", err)
	}
	upd.Media = media

	if userID, err := middleware.UserID(c); err == nil {
		upd.UpdatedBy = &userID
	}

	p, err := h.projectService.Update(id, &upd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Project not found",
			})
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return serverError(c, "failed to update project", err)
	}
	return c.JSON(p)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid project id",
		})
	}

	if err := h.projectService.Delete(id); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Project not found",
			})
		}
		return serverError(c, "failed to delete project", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Project deleted successfully"})
}

func (h *ProjectHandler) Share(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid project id",
		})
	}

	links, err := h.projectService.ShareLinks(id, c.Protocol(), c.Hostname())
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Project not found",
			})
		}
		return serverError(c, "failed to generate share links", err)
	}
	return c.JSON(links)
}

// decodeJSONField parses a JSON-encoded form value. Empty means "not
// provided"; malformed JSON is a hard validation error on create and update
// alike.
func decodeJSONField[T any](raw, field string) (*T, error) {
	if raw == "" {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("invalid JSON in field %q", field)
	}
	return &v, nil
}

// formString distinguishes "absent" from "empty" for partial updates.
func formString(form *multipart.Form, key string) *string {
	if vals, ok := form.Value[key]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}
