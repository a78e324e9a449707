package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *Router {
	log := zap.NewNop()
	store := NewTicketStore()
	return NewRouter(NewFAQAgent(log), NewAccountAgent(log), NewTicketAgent(store, log), log)
}

func TestRouteCoversEveryIntent(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		intent Intent
		agent  string
	}{
		{IntentGreeting, "faq-agent"},
		{IntentFarewell, "faq-agent"},
		{IntentHelp, "faq-agent"},
		{IntentFAQ, "faq-agent"},
		{IntentProduct, "faq-agent"},
		{IntentOther, "faq-agent"},
		{IntentAccount, "account-agent"},
		{IntentOrder, "ticket-agent"},
		{IntentComplaint, "ticket-agent"},
		{IntentUrgent, "ticket-agent"},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			agent := r.Route(tt.intent)
			require.NotNil(t, agent)
			assert.Equal(t, tt.agent, agent.Name())
		})
	}
}

func TestRouteUnknownIntentFallsBackToFAQ(t *testing.T) {
	r := newTestRouter()
	agent := r.Route(Intent("nonsense"))
	require.NotNil(t, agent)
	assert.Equal(t, "faq-agent", agent.Name())
}
