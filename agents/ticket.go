package agents

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"supportdesk/metrics"
	"supportdesk/models"
)

// ErrTicketNotFound signals an update against an id the store never
// issued (or one that raced ahead of creation, which cannot happen
// because ids are handed out under the same lock).
var ErrTicketNotFound = errors.New("ticket not found")

// StoredTicket is a ticket held by the in-memory store backing the
// chat pipeline.
type StoredTicket struct {
	ID          int64      `json:"id"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// TicketStore keeps chat-created tickets in memory with ids assigned
// from 1 upward. The mutex covers id assignment and insertion as one
// step, so concurrent creators always get unique, gap-free ids.
type TicketStore struct {
	mu      sync.Mutex
	nextID  int64
	tickets map[int64]StoredTicket
}

func NewTicketStore() *TicketStore {
	return &TicketStore{
		nextID:  1,
		tickets: make(map[int64]StoredTicket),
	}
}

// Create inserts a new open ticket and returns its id.
func (s *TicketStore) Create(subject, description, priority string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.tickets[id] = StoredTicket{
		ID:          id,
		Subject:     subject,
		Description: description,
		Status:      models.TICKET_STATUS_OPEN,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}
	return id
}

// Update merges the recognized fields of updates into the ticket and
// stamps its update time. Unrecognized keys are ignored. On an unknown
// id the store is left untouched and ErrTicketNotFound is returned.
func (s *TicketStore) Update(id int64, updates map[string]string) (StoredTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return StoredTicket{}, ErrTicketNotFound
	}

	for k, v := range updates {
		switch k {
		case "subject":
			t.Subject = v
		case "description":
			t.Description = v
		case "status":
			t.Status = v
		case "priority":
			t.Priority = v
		}
	}

	now := time.Now()
	t.UpdatedAt = &now
	s.tickets[id] = t
	return t, nil
}

// Get returns the ticket with the given id, if present.
func (s *TicketStore) Get(id int64) (StoredTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	return t, ok
}

// Count reports how many tickets the store holds.
func (s *TicketStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

const ticketSubjectMax = 30

var ticketTemplates = map[string]string{
	"created": "I've created a support ticket for you. Your ticket number is #{ticket_id}. Our support team will review it shortly.",
	"urgent":  "I've created an URGENT support ticket for you. Your ticket number is #{ticket_id}. Our support team has been notified and will prioritize this issue.",
}

// TicketAgent files a ticket for complaint, order and urgent messages
// and replies with its number.
type TicketAgent struct {
	store *TicketStore
	log   *zap.Logger
}

func NewTicketAgent(store *TicketStore, log *zap.Logger) *TicketAgent {
	return &TicketAgent{
		store: store,
		log:   log.With(zap.String("agent", "ticket-agent")),
	}
}

func (a *TicketAgent) Name() string { return "ticket-agent" }

// Respond creates the ticket (high priority for urgent intents,
// medium otherwise) and fills the matching reply template.
func (a *TicketAgent) Respond(ctx context.Context, message string, intent Intent) (string, error) {
	subject := "Support request: " + truncateRunes(message, ticketSubjectMax) + "..."

	priority := models.TICKET_PRIORITY_MEDIUM
	if intent == IntentUrgent {
		priority = models.TICKET_PRIORITY_HIGH
	}

	id := a.store.Create(subject, message, priority)
	metrics.TicketsCreated.Inc()
	a.log.Info("ticket created",
		zap.Int64("ticket_id", id),
		zap.String("priority", priority))

	tmpl := ticketTemplates["created"]
	if intent == IntentUrgent {
		tmpl = ticketTemplates["urgent"]
	}
	return strings.ReplaceAll(tmpl, "{ticket_id}", strconv.FormatInt(id, 10)), nil
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
