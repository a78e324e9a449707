package agents

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const fallbackReply = "I'm not sure how to help with that. Could you try rephrasing your question?"

// SupportAgent coordinates the routed agent's reply and applies the
// intent-conditioned post-processing before anything reaches the user.
type SupportAgent struct {
	log *zap.Logger
}

func NewSupportAgent(log *zap.Logger) *SupportAgent {
	return &SupportAgent{log: log.With(zap.String("agent", "support-coordinator"))}
}

// GenerateResponse runs agent and formats its reply. Agent failures
// never reach the user: the reply degrades to a generic fallback and
// the error is logged with the agent name.
func (s *SupportAgent) GenerateResponse(ctx context.Context, agent Agent, message string, intent Intent) string {
	if agent == nil {
		return fallbackReply
	}

	reply, err := agent.Respond(ctx, message, intent)
	if err != nil {
		s.log.Error("agent failed to respond",
			zap.String("agent", agent.Name()),
			zap.Error(err))
		return fallbackReply
	}
	return formatResponse(reply, intent)
}

// formatResponse applies three rules in order: an empathy prefix for
// urgent intents unless the reply already speaks of urgency or
// priority, an apology prefix for complaints unless the reply already
// apologizes, and a closing follow-up question on substantial replies
// that don't end with a question or already offer further help.
// Prefix checks look at the incoming reply, so re-formatting an
// already formatted reply adds nothing.
func formatResponse(reply string, intent Intent) string {
	lower := strings.ToLower(reply)

	if intent == IntentUrgent &&
		!strings.Contains(lower, "urgent") && !strings.Contains(lower, "priority") {
		reply = "I understand this is urgent. " + reply
	}

	if intent == IntentComplaint &&
		!strings.Contains(lower, "sorry") && !strings.Contains(lower, "apologize") {
		reply = "I'm sorry to hear about your experience. " + reply
	}

	if len(reply) > 50 && intent != IntentGreeting && intent != IntentFarewell {
		lower = strings.ToLower(reply)
		if !strings.HasSuffix(reply, "?") && !strings.Contains(lower, "anything else") {
			reply += " Is there anything else I can help you with?"
		}
	}

	return reply
}
