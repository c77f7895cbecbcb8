package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/metrics"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrChatNotFound       = errors.New("chat not found")
	ErrInvalidMessageType = errors.New("invalid message type")
	ErrNotParticipant     = errors.New("user is not a participant of this chat")
)

type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// ParticipantKey canonicalizes a participant set: ids sorted lexicographically
// and joined by ":". Order-insensitive, so the same set always produces the
// same key.
func ParticipantKey(ids []uuid.UUID) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, ":")
}

// FindOrCreate returns the active conversation for the exact participant set,
// creating it when absent. The unique index on participant_key closes the
// concurrent-create race: the loser of the insert re-reads the winner's row.
func (s *ChatService) FindOrCreate(participantIDs []uuid.UUID) (*models.Chat, bool, error) {
	key := ParticipantKey(participantIDs)

	existing, err := s.findByKey(key)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	now := time.Now()
	chat := models.Chat{
		ID:             uuid.New(),
		ParticipantKey: key,
		LastMessageAt:  now,
		IsActive:       true,
	}
	for _, id := range participantIDs {
		chat.Participants = append(chat.Participants, models.ChatParticipant{
			ChatID:     chat.ID,
			UserID:     id,
			LastReadAt: now,
		})
	}

	if err := s.db.Create(&chat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, err := s.findByKey(key)
			if err != nil {
				return nil, false, fmt.Errorf("failed to fetch existing chat: %w", err)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create chat: %w", err)
	}

	created, err := s.findByKey(key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to reload chat: %w", err)
	}
	return created, true, nil
}

func (s *ChatService) findByKey(key string) (*models.Chat, error) {
	var chat models.Chat
	err := s.db.
		Preload("Participants.User.Role").
		Where("participant_key = ? AND is_active = ?", key, true).
		First(&chat).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// AppendMessage adds a message to an existing conversation and bumps its
// last-activity timestamp.
func (s *ChatService) AppendMessage(senderID uuid.UUID, req *dto.SendMessageRequest) (*models.Message, error) {
	msgType := req.Type
	if msgType == "" {
		msgType = "text"
	}
	if !models.ValidMessageType(msgType) {
		return nil, ErrInvalidMessageType
	}

	var chat models.Chat
	if err := s.db.First(&chat, "id = ?", req.ChatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("failed to fetch chat: %w", err)
	}

	msg := models.Message{
		ID:       uuid.New(),
		ChatID:   chat.ID,
		SenderID: senderID,
		Text:     req.Text,
		Type:     msgType,
		MediaURL: req.MediaURL,
		FileName: req.FileName,
		FileSize: req.FileSize,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}
		return tx.Model(&chat).Update("last_message_at", time.Now()).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	metrics.MessageAppended()

	if err := s.db.Preload("Sender").First(&msg, "id = ?", msg.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload message: %w", err)
	}
	return &msg, nil
}

// Messages returns a conversation with its participants and ordered messages.
func (s *ChatService) Messages(chatID uuid.UUID) (*dto.ChatMessagesResponse, error) {
	var chat models.Chat
	err := s.db.
		Preload("Participants.User.Role").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc, id asc").Preload("Sender")
		}).
		First(&chat, "id = ?", chatID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("failed to fetch chat: %w", err)
	}

	return &dto.ChatMessagesResponse{
		ChatID:       chat.ID,
		Participants: chat.Participants,
		Messages:     chat.Messages,
	}, nil
}

// ConversationsForUser lists the user's active conversations, most recent
// activity first, each with the other participant's profile, the latest
// message, and an unread count derived from the caller's read cursor.
func (s *ChatService) ConversationsForUser(userID uuid.UUID) ([]dto.ConversationResponse, error) {
	var chats []models.Chat
	err := s.db.
		Joins("JOIN chat_participants cp ON cp.chat_id = chats.id AND cp.user_id = ?", userID).
		Where("chats.is_active = ?", true).
		Preload("Participants.User.Role").
		Order("chats.last_message_at desc").
		Find(&chats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	out := make([]dto.ConversationResponse, 0, len(chats))
	for _, chat := range chats {
		var other *models.ChatParticipant
		var self *models.ChatParticipant
		for i := range chat.Participants {
			p := &chat.Participants[i]
			if p.UserID == userID {
				self = p
			} else if other == nil {
				other = p
			}
		}
		// Skip degenerate rows instead of failing the whole listing.
		if other == nil || other.User == nil || self == nil {
			continue
		}

		conv := dto.ConversationResponse{
			ID: chat.ID,
			Participant: dto.ChatUser{
				ID:       other.UserID,
				Name:     other.User.Name,
				Username: other.User.Username,
			},
			Timestamp: chat.LastMessageAt,
		}
		if other.User.Role != nil {
			conv.Participant.Role = other.User.Role.Name
		}

		var last models.Message
		err := s.db.Preload("Sender").
			Where("chat_id = ?", chat.ID).
			Order("created_at desc, id desc").
			First(&last).Error
		if err == nil {
			lm := dto.LastMessage{Text: last.Text, Timestamp: last.CreatedAt}
			if last.Sender != nil {
				lm.Sender = last.Sender.Name
			}
			conv.LastMessage = &lm
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to fetch last message: %w", err)
		}

		err = s.db.Model(&models.Message{}).
			Where("chat_id = ? AND sender_id <> ? AND created_at > ?", chat.ID, userID, self.LastReadAt).
			Count(&conv.UnreadCount).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count unread messages: %w", err)
		}

		out = append(out, conv)
	}
	return out, nil
}

// MarkRead advances the caller's read cursor for a conversation.
func (s *ChatService) MarkRead(chatID, userID uuid.UUID) error {
	result := s.db.Model(&models.ChatParticipant{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Update("last_read_at", time.Now())
	if result.Error != nil {
		return fmt.Errorf("failed to mark chat read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotParticipant
	}
	return nil
}

// ChatUsers returns every user except the given one, for starting new
// conversations.
func (s *ChatService) ChatUsers(excludeID uuid.UUID) ([]dto.ChatUser, error) {
	var users []models.User
	if err := s.db.Preload("Role").Where("id <> ?", excludeID).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list chat users: %w", err)
	}

	out := make([]dto.ChatUser, 0, len(users))
	for _, u := range users {
		cu := dto.ChatUser{ID: u.ID, Name: u.Name, Username: u.Username}
		if u.Role != nil {
			cu.Role = u.Role.Name
		}
		out = append(out, cu)
	}
	return out, nil
}
