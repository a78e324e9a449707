package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAccountAgentAnswers(t *testing.T) {
	a := NewAccountAgent(zap.NewNop())

	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"balance", "What is my account balance?", "₹1,250.00"},
		{"email", "Which email is on my account?", "user@example.com"},
		{"reset password", "I want to reset password for my account", "Forgot Password"},
		{"generic password", "I have a password problem", "Forgot Password"},
		{"update details", "I need to update my phone number", "Account Settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := a.Respond(context.Background(), tt.message, IntentAccount)
			require.NoError(t, err)
			assert.Contains(t, reply, tt.contains)
		})
	}
}

func TestAccountAgentFallsBack(t *testing.T) {
	a := NewAccountAgent(zap.NewNop())
	reply, err := a.Respond(context.Background(), "Can I merge two accounts?", IntentAccount)
	require.NoError(t, err)
	assert.Equal(t, a.fallback, reply)
}
