package agents

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pipeline bundles the agents one chat request flows through.
type Pipeline struct {
	Classifier  *Classifier
	Router      *Router
	Support     *SupportAgent
	Notifier    *Notifier
	TicketStore *TicketStore
}

// NewPipeline wires the full agent graph. model may be nil for
// rule-only classification.
func NewPipeline(model IntentModel, emailEnabled, smsEnabled bool, log *zap.Logger) *Pipeline {
	store := NewTicketStore()
	faq := NewFAQAgent(log)
	account := NewAccountAgent(log)
	ticket := NewTicketAgent(store, log)

	return &Pipeline{
		Classifier:  NewClassifier(model, log),
		Router:      NewRouter(faq, account, ticket, log),
		Support:     NewSupportAgent(log),
		Notifier:    NewNotifier(emailEnabled, smsEnabled, log),
		TicketStore: store,
	}
}

const pipelineKey = "pipeline"

// SetPipelineToContext exposes the agent pipeline to every request handler.
func SetPipelineToContext(p *Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(pipelineKey, p)
		c.Next()
	}
}

func PipelineInstance(c *gin.Context) *Pipeline {
	v, ok := c.Get(pipelineKey)
	if !ok {
		return nil
	}
	p, _ := v.(*Pipeline)
	return p
}
