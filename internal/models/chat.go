package models

import (
	"time"

	"github.com/google/uuid"
)

var MessageTypes = []string{"text", "image", "document", "video"}

func ValidMessageType(t string) bool {
	for _, mt := range MessageTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// Chat is a conversation between two or more users. ParticipantKey is the
// sorted participant ids joined by ":"; its unique index is what makes
// find-or-create converge on a single row under concurrent creation.
type Chat struct {
	ID             uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ParticipantKey string            `gorm:"size:512;not null;uniqueIndex" json:"-"`
	Participants   []ChatParticipant `gorm:"foreignKey:ChatID" json:"participants"`
	Messages       []Message         `gorm:"foreignKey:ChatID" json:"messages,omitempty"`
	LastMessageAt  time.Time         `gorm:"index" json:"lastMessage"`
	IsActive       bool              `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ChatParticipant links a user to a conversation and carries the per-user
// read cursor used for unread counts.
type ChatParticipant struct {
	ChatID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"userId"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	LastReadAt time.Time `json:"lastReadAt"`
}

// Message ordering is insertion order: created_at with id as tiebreak.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null;index" json:"chatId"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null" json:"senderId"`
	Sender    *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Type      string    `gorm:"size:20;default:'text'" json:"type"`
	MediaURL  string    `gorm:"type:text" json:"mediaUrl,omitempty"`
	FileName  string    `gorm:"size:255" json:"fileName,omitempty"`
	FileSize  int64     `json:"fileSize,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"timestamp"`
}
