package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
)

type CreateConversationRequest struct {
	ParticipantIDs []uuid.UUID `json:"participantIds"`
}

type SendMessageRequest struct {
	ChatID   uuid.UUID `json:"chatId"`
	Text     string    `json:"text"`
	Type     string    `json:"type"`
	MediaURL string    `json:"mediaUrl"`
	FileName string    `json:"fileName"`
	FileSize int64     `json:"fileSize"`
}

// ChatUser is the trimmed profile shown in conversation lists.
type ChatUser struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type LastMessage struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
}

type ConversationResponse struct {
	ID          uuid.UUID    `json:"id"`
	Participant ChatUser     `json:"participant"`
	LastMessage *LastMessage `json:"lastMessage"`
	UnreadCount int64        `json:"unreadCount"`
	Timestamp   time.Time    `json:"timestamp"`
}

type ChatMessagesResponse struct {
	ChatID       uuid.UUID                `json:"chatId"`
	Participants []models.ChatParticipant `json:"participants"`
	Messages     []models.Message         `json:"messages"`
}
