package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"supportdesk/agents"
	dbpkg "supportdesk/db"
	"supportdesk/metrics"
	"supportdesk/models"
)

const (
	ticketSubjectMin     = 3
	ticketSubjectMaxLen  = 100
	ticketDescriptionMin = 10
)

type TicketCreateInput struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type TicketUpdateInput struct {
	Subject     *string `json:"subject"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

// CreateTicket handles POST /api/tickets. Ids come from the shared
// ticket store so direct and chat-created tickets live in one
// sequence; the row is mirrored into the database for the listing
// endpoints.
func CreateTicket(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	pipe := agents.PipelineInstance(c)
	if db == nil || pipe == nil {
		RespondError(c, "service unavailable", http.StatusInternalServerError)
		return
	}

	var input TicketCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, "invalid request body", http.StatusBadRequest)
		return
	}

	subject := strings.TrimSpace(input.Subject)
	description := strings.TrimSpace(input.Description)
	priority := strings.TrimSpace(input.Priority)

	if n := len([]rune(subject)); n < ticketSubjectMin || n > ticketSubjectMaxLen {
		RespondError(c, "subject must be between 3 and 100 characters", http.StatusBadRequest)
		return
	}
	if len([]rune(description)) < ticketDescriptionMin {
		RespondError(c, "description must be at least 10 characters", http.StatusBadRequest)
		return
	}
	if priority == "" {
		priority = models.TICKET_PRIORITY_MEDIUM
	}
	if !models.ValidTicketPriority(priority) {
		RespondError(c, "priority must be one of: low, medium, high, urgent", http.StatusBadRequest)
		return
	}

	id := pipe.TicketStore.Create(subject, description, priority)

	now := time.Now()
	ticket := models.Ticket{
		ID:          id,
		Subject:     subject,
		Description: description,
		Status:      models.TICKET_STATUS_OPEN,
		Priority:    priority,
		CreatedAt:   &now,
	}
	if err := db.Create(&ticket).Error; err != nil {
		RespondServerError(c, "ticket save failed", err)
		return
	}

	metrics.TicketsCreated.Inc()
	pipe.Notifier.Notify(c.Request.Context(),
		"New support ticket: "+subject, "", agents.NotifyTypeTicketCreated)

	RespondCreated(c, ticket)
}

// GetTickets handles GET /api/tickets, newest first.
func GetTickets(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "service unavailable", http.StatusInternalServerError)
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			RespondError(c, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	var tickets []models.Ticket
	if err := db.Order("id desc").Limit(limit).Find(&tickets).Error; err != nil {
		RespondServerError(c, "ticket lookup failed", err)
		return
	}

	RespondSuccess(c, gin.H{"tickets": tickets})
}

// UpdateTicket handles PATCH /api/tickets/:id. Only subject,
// description, status and priority are recognized; anything else in
// the body is ignored. Unknown ids answer 404.
func UpdateTicket(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	pipe := agents.PipelineInstance(c)
	if db == nil || pipe == nil {
		RespondError(c, "service unavailable", http.StatusInternalServerError)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		RespondError(c, "invalid ticket id", http.StatusBadRequest)
		return
	}

	var input TicketUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, "invalid request body", http.StatusBadRequest)
		return
	}

	updates := make(map[string]string)
	if input.Subject != nil {
		s := strings.TrimSpace(*input.Subject)
		if n := len([]rune(s)); n < ticketSubjectMin || n > ticketSubjectMaxLen {
			RespondError(c, "subject must be between 3 and 100 characters", http.StatusBadRequest)
			return
		}
		updates["subject"] = s
	}
	if input.Description != nil {
		d := strings.TrimSpace(*input.Description)
		if len([]rune(d)) < ticketDescriptionMin {
			RespondError(c, "description must be at least 10 characters", http.StatusBadRequest)
			return
		}
		updates["description"] = d
	}
	if input.Status != nil {
		if !models.ValidTicketStatus(*input.Status) {
			RespondError(c, "status must be one of: open, in_progress, resolved, closed", http.StatusBadRequest)
			return
		}
		updates["status"] = *input.Status
	}
	if input.Priority != nil {
		if !models.ValidTicketPriority(*input.Priority) {
			RespondError(c, "priority must be one of: low, medium, high, urgent", http.StatusBadRequest)
			return
		}
		updates["priority"] = *input.Priority
	}
	if len(updates) == 0 {
		RespondError(c, "no recognized fields to update", http.StatusBadRequest)
		return
	}

	updated, err := pipe.TicketStore.Update(id, updates)
	if err != nil {
		RespondError(c, "ticket not found", http.StatusNotFound)
		return
	}

	// Mirror the change into the persisted row when one exists. Chat
	// tickets have no row, which is fine.
	columns := map[string]interface{}{"updated_at": updated.UpdatedAt}
	for k, v := range updates {
		columns[k] = v
	}
	if err := db.Model(&models.Ticket{}).Where("id = ?", id).Updates(columns).Error; err != nil {
		RespondServerError(c, "ticket save failed", err)
		return
	}

	RespondSuccess(c, updated)
}
