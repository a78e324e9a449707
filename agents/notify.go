package agents

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"supportdesk/metrics"
)

/************ MARK: NOTIFICATION TYPES ***/

const (
	NotifyTypeInfo          = "info"
	NotifyTypeUrgent        = "urgent"
	NotifyTypeHigh          = "high"
	NotifyTypeComplaint     = "complaint"
	NotifyTypeTicketCreated = "ticket_created"
)

// DefaultRecipient receives notifications when no recipient is named.
const DefaultRecipient = "support@example.com"

// NotificationRecord is one append-only audit entry. Delivery itself
// is simulated; the record is the source of truth.
type NotificationRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Recipient string    `json:"recipient"`
	Type      string    `json:"type"`
}

// Notifier records notifications and simulates channel delivery.
// Urgent and high types go out on SMS and email, ticket and complaint
// types on email, everything else as a low-priority email. Channels
// are gated by the enabled flags; the record is written regardless.
type Notifier struct {
	mu      sync.Mutex
	records []NotificationRecord

	emailEnabled bool
	smsEnabled   bool
	sendDelay    time.Duration
	log          *zap.Logger
}

func NewNotifier(emailEnabled, smsEnabled bool, log *zap.Logger) *Notifier {
	return &Notifier{
		emailEnabled: emailEnabled,
		smsEnabled:   smsEnabled,
		sendDelay:    100 * time.Millisecond,
		log:          log.With(zap.String("agent", "notify-agent")),
	}
}

// Notify appends an audit record and fans out on the channels the
// notification type calls for. An empty recipient falls back to the
// support inbox.
func (n *Notifier) Notify(ctx context.Context, message, recipient, notifType string) NotificationRecord {
	if recipient == "" {
		recipient = DefaultRecipient
	}
	if notifType == "" {
		notifType = NotifyTypeInfo
	}

	rec := NotificationRecord{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Message:   message,
		Recipient: recipient,
		Type:      notifType,
	}

	n.mu.Lock()
	n.records = append(n.records, rec)
	n.mu.Unlock()

	metrics.NotificationsRecorded.WithLabelValues(notifType).Inc()

	switch notifType {
	case NotifyTypeUrgent, NotifyTypeHigh:
		n.log.Warn("urgent notification",
			zap.String("recipient", recipient),
			zap.String("message", message))
		if n.smsEnabled {
			n.mockSendSMS(ctx, recipient, message)
		}
		if n.emailEnabled {
			n.mockSendEmail(ctx, recipient, "URGENT: "+message, "high")
		}
	case NotifyTypeTicketCreated, NotifyTypeComplaint:
		n.log.Info("notification recorded",
			zap.String("type", notifType),
			zap.String("recipient", recipient))
		if n.emailEnabled {
			n.mockSendEmail(ctx, recipient, message, "medium")
		}
	default:
		n.log.Info("notification recorded",
			zap.String("type", notifType),
			zap.String("recipient", recipient))
		if n.emailEnabled {
			n.mockSendEmail(ctx, recipient, message, "low")
		}
	}

	return rec
}

// History returns up to limit records, newest first. limit <= 0 means
// everything.
func (n *Notifier) History(limit int) []NotificationRecord {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]NotificationRecord, 0, len(n.records))
	for i := len(n.records) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, n.records[i])
	}
	return out
}

// mockSendEmail stands in for a real mail integration. The delay
// imitates provider latency.
func (n *Notifier) mockSendEmail(ctx context.Context, recipient, message, priority string) {
	n.log.Info("mock email sent",
		zap.String("to", recipient),
		zap.String("priority", priority))
	n.wait(ctx)
}

func (n *Notifier) mockSendSMS(ctx context.Context, recipient, message string) {
	n.log.Info("mock sms sent", zap.String("to", recipient))
	n.wait(ctx)
}

func (n *Notifier) wait(ctx context.Context) {
	if n.sendDelay <= 0 {
		return
	}
	t := time.NewTimer(n.sendDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
