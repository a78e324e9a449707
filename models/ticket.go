package models

import "time"

/************************************************
/**** MARK: TICKET STATUS ****/
/************************************************/
const TICKET_STATUS_OPEN = "open"
const TICKET_STATUS_IN_PROGRESS = "in_progress"
const TICKET_STATUS_RESOLVED = "resolved"
const TICKET_STATUS_CLOSED = "closed"

/************************************************
/**** MARK: TICKET PRIORITY ****/
/************************************************/
const TICKET_PRIORITY_LOW = "low"
const TICKET_PRIORITY_MEDIUM = "medium"
const TICKET_PRIORITY_HIGH = "high"
const TICKET_PRIORITY_URGENT = "urgent"

// Ticket is the persisted mirror of a ticket created via the direct
// endpoint. Ids are assigned by the shared in-memory ticket store, not
// by the database, so chat and direct tickets share one sequence.
type Ticket struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Subject     string     `gorm:"not null" json:"subject"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Status      string     `gorm:"not null;default:'open';index" json:"status"`
	Priority    string     `gorm:"not null;default:'medium'" json:"priority"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// ValidTicketStatus reports whether s is one of the accepted statuses.
func ValidTicketStatus(s string) bool {
	switch s {
	case TICKET_STATUS_OPEN, TICKET_STATUS_IN_PROGRESS, TICKET_STATUS_RESOLVED, TICKET_STATUS_CLOSED:
		return true
	}
	return false
}

// ValidTicketPriority reports whether p is one of the accepted priorities.
func ValidTicketPriority(p string) bool {
	switch p {
	case TICKET_PRIORITY_LOW, TICKET_PRIORITY_MEDIUM, TICKET_PRIORITY_HIGH, TICKET_PRIORITY_URGENT:
		return true
	}
	return false
}
