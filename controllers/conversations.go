package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	dbpkg "supportdesk/db"
	"supportdesk/models"
)

type ConversationResponse struct {
	ID        int64            `json:"id"`
	CreatedAt *time.Time       `json:"created_at"`
	Messages  []models.Message `json:"messages"`
}

// GetConversationByID handles GET /api/conversations/:id and returns
// the conversation with its messages in chronological order.
func GetConversationByID(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "service unavailable", http.StatusInternalServerError)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		RespondError(c, "invalid conversation id", http.StatusBadRequest)
		return
	}

	var conversation models.Conversation
	if err := db.First(&conversation, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			RespondError(c, "conversation not found", http.StatusNotFound)
			return
		}
		RespondServerError(c, "conversation lookup failed", err)
		return
	}

	var messages []models.Message
	err := db.Where("conversation_id = ?", conversation.ID).
		Order("timestamp asc, id asc").
		Find(&messages).Error
	if err != nil {
		RespondServerError(c, "message lookup failed", err)
		return
	}

	RespondSuccess(c, ConversationResponse{
		ID:        conversation.ID,
		CreatedAt: conversation.CreatedAt,
		Messages:  messages,
	})
}
