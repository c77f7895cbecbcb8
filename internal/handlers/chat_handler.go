package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/middleware"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// CreateConversation finds or creates the conversation for an exact
// participant set. Repeat calls with the same set return the same id.
func (h *ChatHandler) CreateConversation(c *fiber.Ctx) error {
	var req dto.CreateConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if len(req.ParticipantIDs) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "At least 2 participants required",
		})
	}

	chat, created, err := h.chatService.FindOrCreate(req.ParticipantIDs)
	if err != nil {
		return serverError(c, "failed to create conversation", err)
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(chat)
	}
	return c.JSON(chat)
}

func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	senderID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Access token required",
		})
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Message text is required",
		})
	}

	msg, err := h.chatService.AppendMessage(senderID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChatNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Chat not found",
			})
		case errors.Is(err, services.ErrInvalidMessageType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return serverError(c, "failed to send message", err)
	}
	return c.JSON(msg)
}

func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	chatID, err := parseIDParam(c, "chatId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid chat id",
		})
	}

	resp, err := h.chatService.Messages(chatID)
	if err != nil {
		if errors.Is(err, services.ErrChatNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Chat not found",
			})
		}
		return serverError(c, "failed to fetch messages", err)
	}
	return c.JSON(resp)
}

func (h *ChatHandler) Conversations(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid user id",
		})
	}

	conversations, err := h.chatService.ConversationsForUser(userID)
	if err != nil {
		return serverError(c, "failed to fetch conversations", err)
	}
	return c.JSON(conversations)
}

// MarkRead advances the caller's read cursor; the unread count for that
// conversation drops to zero until new messages arrive.
func (h *ChatHandler) MarkRead(c *fiber.Ctx) error {
	chatID, err := parseIDParam(c, "chatId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid chat id",
		})
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Access token required",
		})
	}

	if err := h.chatService.MarkRead(chatID, userID); err != nil {
		if errors.Is(err, services.ErrNotParticipant) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Chat not found",
			})
		}
		return serverError(c, "failed to mark chat read", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Conversation marked as read"})
}

func (h *ChatHandler) Users(c *fiber.Ctx) error {
	currentUserID, err := parseIDParam(c, "currentUserId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid user id",
		})
	}

	users, err := h.chatService.ChatUsers(currentUserID)
	if err != nil {
		return serverError(c, "failed to list chat users", err)
	}
	return c.JSON(users)
}
