package agents

import "go.uber.org/zap"

// Router maps each intent to the agent that handles it. The table is
// fixed at construction and total over the intent set; anything
// unmapped (including labels the table has never seen) goes to FAQ.
type Router struct {
	routes   map[Intent]Agent
	fallback Agent
	log      *zap.Logger
}

func NewRouter(faq *FAQAgent, account *AccountAgent, ticket *TicketAgent, log *zap.Logger) *Router {
	return &Router{
		routes: map[Intent]Agent{
			IntentGreeting:  faq,
			IntentFarewell:  faq,
			IntentHelp:      faq,
			IntentFAQ:       faq,
			IntentProduct:   faq,
			IntentOther:     faq,
			IntentAccount:   account,
			IntentOrder:     ticket,
			IntentComplaint: ticket,
			IntentUrgent:    ticket,
		},
		fallback: faq,
		log:      log.With(zap.String("agent", "router")),
	}
}

// Route never returns nil.
func (r *Router) Route(intent Intent) Agent {
	if a, ok := r.routes[intent]; ok {
		return a
	}
	r.log.Warn("no route for intent, using fallback", zap.String("intent", string(intent)))
	return r.fallback
}
