package models

import "time"

// Message is one turn in a conversation. IsUser marks the sender:
// true for the customer, false for the agent reply.
type Message struct {
	ID             int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	IsUser         bool       `gorm:"not null;default:true" json:"is_user"`
	Timestamp      *time.Time `json:"timestamp"`
	ConversationID int64      `gorm:"not null;index" json:"conversation_id"`
}
