package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubModel struct {
	label string
	err   error
}

func (m *stubModel) ClassifyIntent(ctx context.Context, message string) (string, error) {
	return m.label, m.err
}

func TestClassifyWithRules(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected Intent
	}{
		{"greeting", "Hello there", IntentGreeting},
		{"greeting anchored at start", "Hi, I have a question", IntentGreeting},
		{"farewell", "Bye for now", IntentFarewell},
		{"help", "I need help with something", IntentHelp},
		{"account", "I can't access my account", IntentAccount},
		{"order", "Where is my order", IntentOrder},
		{"product", "Does this come with a warranty", IntentProduct},
		{"complaint", "I am very unhappy with the service", IntentComplaint},
		{"urgent wins over order", "This is urgent, my order never arrived", IntentUrgent},
		{"faq question word", "What is your return policy", IntentFAQ},
		{"faq trailing question mark", "Return policy details?", IntentFAQ},
		{"unmatched", "The sky is blue today.", IntentOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyWithRules(tt.message))
		})
	}
}

func TestClassifyWithRulesIsDeterministic(t *testing.T) {
	// Same message, same label, every time. The pattern table is an
	// ordered slice, so there is no map-iteration lottery to lose.
	message := "This is urgent, my order never arrived"
	for i := 0; i < 100; i++ {
		require.Equal(t, IntentUrgent, classifyWithRules(message))
	}
}

func TestClassifierUsesModelLabel(t *testing.T) {
	cl := NewClassifier(&stubModel{label: " Complaint "}, zap.NewNop())
	got := cl.Classify(context.Background(), "hello")

	// The model's normalized answer wins over the rule path, which
	// would have said greeting.
	assert.Equal(t, IntentComplaint, got)
}

func TestClassifierFallsBackOnModelError(t *testing.T) {
	cl := NewClassifier(&stubModel{err: errors.New("connection refused")}, zap.NewNop())
	assert.Equal(t, IntentGreeting, cl.Classify(context.Background(), "Hello there"))
}

func TestClassifierFallsBackOnUnknownLabel(t *testing.T) {
	cl := NewClassifier(&stubModel{label: "spam"}, zap.NewNop())
	assert.Equal(t, IntentGreeting, cl.Classify(context.Background(), "Hello there"))
}

func TestClassifierWithoutModelUsesRules(t *testing.T) {
	cl := NewClassifier(nil, zap.NewNop())
	assert.Equal(t, IntentOther, cl.Classify(context.Background(), "The sky is blue today."))
}

func TestValidIntent(t *testing.T) {
	for _, i := range []Intent{
		IntentGreeting, IntentFarewell, IntentHelp, IntentAccount, IntentOrder,
		IntentProduct, IntentComplaint, IntentUrgent, IntentFAQ, IntentOther,
	} {
		assert.True(t, ValidIntent(i), string(i))
	}
	assert.False(t, ValidIntent("spam"))
	assert.False(t, ValidIntent(""))
}
