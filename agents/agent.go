package agents

import "context"

// Agent is the capability shared by every responder in the pipeline:
// turn a message and its classified intent into a reply string. The
// ticket agent is the only variant with a side effect (ticket creation).
type Agent interface {
	Name() string
	Respond(ctx context.Context, message string, intent Intent) (string, error)
}
