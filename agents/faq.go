package agents

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type faqEntry struct {
	keyword string
	answer  string
}

// FAQAgent answers from a fixed keyword table. Entries are checked in
// declaration order against the lowercased message and the first
// substring hit wins, so broader keywords belong later in the table.
type FAQAgent struct {
	entries  []faqEntry
	fallback string
	log      *zap.Logger
}

func NewFAQAgent(log *zap.Logger) *FAQAgent {
	return &FAQAgent{
		entries: []faqEntry{
			{"greeting", "Hello! Welcome to our customer support. How can I assist you today?"},
			{"farewell", "Thank you for contacting us. Have a great day!"},
			{"business hours", "Our business hours are Monday to Friday, 9 AM to 6 PM EST. We're closed on weekends and public holidays."},
			{"shipping", "Standard shipping takes 3-5 business days. Express shipping is available for an additional fee and delivers within 1-2 business days."},
			{"return", "We accept returns within 30 days of purchase. Items must be unused and in their original packaging. Refunds are processed within 5-7 business days."},
			{"warranty", "All our products come with a 1-year manufacturer warranty covering defects in materials and workmanship."},
			{"payment", "We accept all major credit cards, debit cards, PayPal, and bank transfers. Payment is processed securely at checkout."},
			{"track", "You can track your order using the tracking number sent to your email after shipment. Visit the tracking page and enter your number."},
			{"cancel", "Orders can be cancelled within 24 hours of placement. After that, please wait for delivery and use our return process."},
			{"availab", "Product availability is shown on each product page. Out-of-stock items can be added to a waitlist for restock notifications."},
			{"contact", "You can reach us by email at support@example.com, by phone at 1-800-555-0100, or right here in this chat."},
			{"help", "I can help you with orders, shipping, returns, payments, account questions, and general product information. What do you need?"},
		},
		fallback: "I don't have specific information about that, but our support team can help. You can also browse our help center for detailed guides.",
		log:      log.With(zap.String("agent", "faq-agent")),
	}
}

func (a *FAQAgent) Name() string { return "faq-agent" }

// Respond scans the table and falls back to a generic pointer at the
// help center. It never fails.
func (a *FAQAgent) Respond(ctx context.Context, message string, intent Intent) (string, error) {
	lower := strings.ToLower(message)
	for _, e := range a.entries {
		if strings.Contains(lower, e.keyword) {
			a.log.Debug("faq keyword matched", zap.String("keyword", e.keyword))
			return e.answer, nil
		}
	}
	return a.fallback, nil
}
