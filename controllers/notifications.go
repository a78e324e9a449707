package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"supportdesk/agents"
)

const defaultNotificationLimit = 10

// GetNotifications handles GET /api/notifications?limit=N and returns
// the most recent audit records, newest first.
func GetNotifications(c *gin.Context) {
	pipe := agents.PipelineInstance(c)
	if pipe == nil {
		RespondError(c, "service unavailable", http.StatusInternalServerError)
		return
	}

	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			RespondError(c, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records := pipe.Notifier.History(limit)
	RespondSuccess(c, gin.H{"notifications": records, "count": len(records)})
}
