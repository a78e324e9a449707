// Package metrics registers the Prometheus instruments exposed at
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesProcessed counts chat messages by classified intent.
	MessagesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "supportdesk_messages_processed_total",
		Help: "Chat messages processed, labeled by classified intent.",
	}, []string{"intent"})

	// TicketsCreated counts tickets from both the chat pipeline and
	// the direct endpoint.
	TicketsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "supportdesk_tickets_created_total",
		Help: "Support tickets created.",
	})

	// NotificationsRecorded counts audit records by notification type.
	NotificationsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "supportdesk_notifications_recorded_total",
		Help: "Notification records appended, labeled by type.",
	}, []string{"type"})
)
