package agents

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Intent is the closed label set describing what the user wants.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentFarewell  Intent = "farewell"
	IntentHelp      Intent = "help"
	IntentAccount   Intent = "account"
	IntentOrder     Intent = "order"
	IntentProduct   Intent = "product"
	IntentComplaint Intent = "complaint"
	IntentUrgent    Intent = "urgent"
	IntentFAQ       Intent = "faq"
	IntentOther     Intent = "other"
)

// ValidIntent reports whether i belongs to the closed label set.
func ValidIntent(i Intent) bool {
	switch i {
	case IntentGreeting, IntentFarewell, IntentHelp, IntentAccount, IntentOrder,
		IntentProduct, IntentComplaint, IntentUrgent, IntentFAQ, IntentOther:
		return true
	}
	return false
}

type patternGroup struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// intentPatterns is evaluated top to bottom and the first group with a
// matching pattern wins, so the order below is part of the
// classification contract. "urgent" sits before the topical groups:
// "this is urgent, my order never arrived" must classify as urgent,
// not order. "faq" is last because its patterns are near catch-alls.
var intentPatterns = []patternGroup{
	{IntentGreeting, compileAll(
		`^(hi|hello|hey|greetings|howdy|hola)`,
		`^good (morning|afternoon|evening)`,
	)},
	{IntentFarewell, compileAll(
		`^(bye|goodbye|see you|cya|farewell)`,
		`^take care`,
	)},
	{IntentHelp, compileAll(
		`help( me)?`,
		`how (can|do) i`,
		`support`,
	)},
	{IntentUrgent, compileAll(
		`(urgent|emergency|immediately|asap)`,
		`(critical|crucial)`,
		`need.*now`,
	)},
	{IntentAccount, compileAll(
		`(my )?account`,
		`(sign|log) ?in`,
		`password`,
		`login`,
		`profile`,
		`reset.*password`,
		`forgot.*password`,
		`change.*password`,
		`cant.*login`,
	)},
	{IntentOrder, compileAll(
		`(my )?(order|purchase)`,
		`(track|cancel|modify).*order`,
		`shipping`,
		`delivery`,
		`where.*order`,
		`order.*status`,
	)},
	{IntentProduct, compileAll(
		`product`,
		`(item|goods)`,
		`(availability|in stock)`,
		`specifications?`,
		`features?`,
		`how.*work`,
		`warranty`,
	)},
	{IntentComplaint, compileAll(
		`(complaint|dissatisfied|unhappy)`,
		`(bad|poor) (service|experience)`,
		`(not working|broken|damaged|defective)`,
		`issue.*with`,
		`problem.*with`,
		`doesnt.*work`,
		`faulty`,
	)},
	{IntentFAQ, compileAll(
		`(what|where|when|who|how|why)`,
		`can you tell me`,
		`explain`,
		`info about`,
		`\?$`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+e))
	}
	return out
}

// IntentModel is an optional external classification capability. The
// classifier transparently falls back to the rule path when it is
// absent or any call fails.
type IntentModel interface {
	ClassifyIntent(ctx context.Context, message string) (string, error)
}

const modelClassifyTimeout = 10 * time.Second

// Classifier labels free-text messages with one intent from the
// closed set, via the external model when configured, rules otherwise.
type Classifier struct {
	model   IntentModel
	timeout time.Duration
	log     *zap.Logger
}

func NewClassifier(model IntentModel, log *zap.Logger) *Classifier {
	return &Classifier{
		model:   model,
		timeout: modelClassifyTimeout,
		log:     log.With(zap.String("agent", "intent-classifier")),
	}
}

// Classify maps a message to an intent. Model failures of any kind
// (transport error, timeout, label outside the closed set) are logged
// and swallowed; the rule path is total and cannot fail.
func (cl *Classifier) Classify(ctx context.Context, message string) Intent {
	if cl.model != nil {
		intent, err := cl.classifyWithModel(ctx, message)
		if err == nil {
			cl.log.Info("model classified intent", zap.String("intent", string(intent)))
			return intent
		}
		cl.log.Warn("model classification failed, falling back to rules", zap.Error(err))
	}

	intent := classifyWithRules(message)
	cl.log.Info("rule classified intent", zap.String("intent", string(intent)))
	return intent
}

func (cl *Classifier) classifyWithModel(ctx context.Context, message string) (Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, cl.timeout)
	defer cancel()

	label, err := cl.model.ClassifyIntent(ctx, message)
	if err != nil {
		return "", err
	}

	intent := Intent(strings.ToLower(strings.TrimSpace(label)))
	if !ValidIntent(intent) {
		return "", fmt.Errorf("model returned unrecognized label %q", label)
	}
	return intent, nil
}

func classifyWithRules(message string) Intent {
	for _, group := range intentPatterns {
		for _, p := range group.patterns {
			if p.MatchString(message) {
				return group.intent
			}
		}
	}
	return IntentOther
}
