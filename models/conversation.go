package models

import "time"

// Conversation groups the ordered user/agent turns of a single chat session.
type Conversation struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	Messages []Message `gorm:"foreignkey:ConversationID" json:"messages,omitempty"`
}
