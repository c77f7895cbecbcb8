package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/services"
)

type RoleHandler struct {
	roleService *services.RoleService
}

func NewRoleHandler(roleService *services.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) List(c *fiber.Ctx) error {
	roles, err := h.roleService.List()
	if err != nil {
		return serverError(c, "failed to list roles", err)
	}
	return c.JSON(roles)
}

func (h *RoleHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid role id",
		})
	}

	role, err := h.roleService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrRoleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Role not found",
			})
		}
		return serverError(c, "failed to fetch role", err)
	}
	return c.JSON(role)
}

func (h *RoleHandler) Create(c *fiber.Ctx) error {
	req, errResp := parseRoleRequest(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	role, err := h.roleService.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrRoleNameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Role name already exists",
			})
		}
		return serverError(c, "failed to create role", err)
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid role id",
		})
	}

	req, errResp := parseRoleRequest(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	role, err := h.roleService.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoleNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Role not found",
			})
		case errors.Is(err, services.ErrRoleNameTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Role name already exists",
			})
		}
		return serverError(c, "failed to update role", err)
	}
	return c.JSON(role)
}

func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid role id",
		})
	}

	if err := h.roleService.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Role not found",
			})
		}
		return serverError(c, "failed to delete role", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Role deleted successfully"})
}

func parseRoleRequest(c *fiber.Ctx) (*dto.RoleRequest, *dto.ErrorResponse) {
	var req dto.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, &dto.ErrorResponse{Error: "Invalid request body"}
	}
	if req.Name == "" || req.Screens == nil {
		return nil, &dto.ErrorResponse{Error: "Name and screens array are required"}
	}
	return &req, nil
}
