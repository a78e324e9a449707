package agents

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type accountEntry struct {
	keyword string
	answer  string
}

// AccountAgent serves canned answers for account questions. This is a
// demo surface: no real account data is read, the answers are fixed.
type AccountAgent struct {
	entries  []accountEntry
	fallback string
	log      *zap.Logger
}

func NewAccountAgent(log *zap.Logger) *AccountAgent {
	return &AccountAgent{
		entries: []accountEntry{
			{"balance", "Your current account balance is ₹1,250.00. Your last payment of ₹500.00 was received on the 15th."},
			{"email", "The email address on your account is user@example.com. To change it, go to Account Settings > Profile."},
			{"reset password", "To reset your password, click 'Forgot Password' on the login page. A reset link will be sent to your registered email."},
			{"change password", "You can change your password in Account Settings > Security. You'll need your current password to set a new one."},
			{"password", "For password issues, use the 'Forgot Password' link on the login page, or visit Account Settings > Security if you're logged in."},
			{"update", "You can update your account details in Account Settings. Changes to email or phone require verification."},
			{"change", "You can change your account details in Account Settings. Changes to email or phone require verification."},
		},
		fallback: "I can help with account questions like balance, email, and password. For anything else account-related, please contact our support team.",
		log:      log.With(zap.String("agent", "account-agent")),
	}
}

func (a *AccountAgent) Name() string { return "account-agent" }

func (a *AccountAgent) Respond(ctx context.Context, message string, intent Intent) (string, error) {
	lower := strings.ToLower(message)
	for _, e := range a.entries {
		if strings.Contains(lower, e.keyword) {
			a.log.Debug("account keyword matched", zap.String("keyword", e.keyword))
			return e.answer, nil
		}
	}
	return a.fallback, nil
}
