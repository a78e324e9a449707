package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"supportdesk/agents"
	dbpkg "supportdesk/db"
	"supportdesk/metrics"
	"supportdesk/models"
)

type MessageCreateInput struct {
	Content        string `json:"content"`
	ConversationID *int64 `json:"conversation_id"`
}

type MessageResponse struct {
	ID             int64      `json:"id"`
	Content        string     `json:"content"`
	ConversationID int64      `json:"conversation_id"`
	Timestamp      *time.Time `json:"timestamp"`
	IsUser         bool       `json:"is_user"`
}

// Chat handles POST /api/chat: persist the user message, run it
// through the agent pipeline, persist and return the reply.
func Chat(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	pipe := agents.PipelineInstance(c)
	if db == nil || pipe == nil {
		RespondError(c, "service unavailable", http.StatusInternalServerError)
		return
	}

	var input MessageCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, "invalid request body", http.StatusBadRequest)
		return
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		RespondError(c, "content is required", http.StatusBadRequest)
		return
	}

	// Reuse the conversation when a known id is sent, otherwise open a
	// new one. An unknown id does not fail the request.
	var conversation models.Conversation
	if input.ConversationID != nil && *input.ConversationID > 0 {
		err := db.First(&conversation, *input.ConversationID).Error
		if err != nil && !gorm.IsRecordNotFoundError(err) {
			RespondServerError(c, "conversation lookup failed", err)
			return
		}
	}
	if conversation.ID == 0 {
		if err := db.Create(&conversation).Error; err != nil {
			RespondServerError(c, "conversation create failed", err)
			return
		}
	}

	now := time.Now()
	userMessage := models.Message{
		Content:        content,
		IsUser:         true,
		Timestamp:      &now,
		ConversationID: conversation.ID,
	}
	if err := db.Create(&userMessage).Error; err != nil {
		RespondServerError(c, "user message save failed", err)
		return
	}

	ctx := c.Request.Context()
	intent := pipe.Classifier.Classify(ctx, content)
	agent := pipe.Router.Route(intent)
	reply := pipe.Support.GenerateResponse(ctx, agent, content, intent)
	metrics.MessagesProcessed.WithLabelValues(string(intent)).Inc()

	replyAt := time.Now()
	agentMessage := models.Message{
		Content:        reply,
		IsUser:         false,
		Timestamp:      &replyAt,
		ConversationID: conversation.ID,
	}
	if err := db.Create(&agentMessage).Error; err != nil {
		RespondServerError(c, "agent message save failed", err)
		return
	}

	if intent == agents.IntentComplaint || intent == agents.IntentUrgent {
		pipe.Notifier.Notify(ctx, content, "", string(intent))
	}

	RespondSuccess(c, MessageResponse{
		ID:             agentMessage.ID,
		Content:        reply,
		ConversationID: conversation.ID,
		Timestamp:      agentMessage.Timestamp,
		IsUser:         false,
	})
}
