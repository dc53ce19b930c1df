package brainstorm

import (
	"fmt"

	"github.com/casualjim/brainstorm/conversation"
	"github.com/casualjim/brainstorm/messages"
	"github.com/casualjim/brainstorm/provider"
	"github.com/casualjim/brainstorm/tool"
	"github.com/fogfish/opts"
	"github.com/google/uuid"
)

// DefaultModel is the hard-coded fallback used when neither the run options
// nor the agent configuration name a model.
const DefaultModel = "gpt-4o-mini"

// Agent composes a persona, a set of named callable tools, and a provider
// adapter. It owns a conversation store and is the sole mutator of it; the
// provider is shared, not owned.
type Agent struct {
	name        string
	description string
	model       string
	tools       []tool.Definition
	provider    provider.Provider

	conversations *conversation.Store
}

// AgentOption configures an Agent at construction time.
type AgentOption = opts.Option[Agent]

var (
	// Name sets the persona name rendered into the system prompt.
	Name = opts.ForName[Agent, string]("name")
	// Description sets the persona description rendered into the system prompt.
	Description = opts.ForName[Agent, string]("description")
	// Model sets the agent's default model.
	Model = opts.ForName[Agent, string]("model")
	// WithProvider sets the provider adapter the agent runs against.
	WithProvider = opts.ForName[Agent, provider.Provider]("provider")
)

// Tools registers named callable tools with the agent. The core never
// invokes them; they are carried for external dispatch.
func Tools(t tool.Definition, extraTools ...tool.Definition) AgentOption {
	return opts.Type[Agent](func(o *Agent) error {
		o.tools = append(o.tools, t)
		o.tools = append(o.tools, extraTools...)
		return nil
	})
}

// New creates an agent with the provided options. It panics on invalid
// options; construction happens at startup with literals.
func New(options ...AgentOption) *Agent {
	agent := &Agent{
		conversations: conversation.New(),
	}
	if err := opts.Apply(agent, options); err != nil {
		panic(err)
	}
	return agent
}

// Name returns the persona name.
func (a *Agent) Name() string {
	return a.name
}

// Description returns the persona description.
func (a *Agent) Description() string {
	return a.description
}

// Tools returns the agent's tool definitions.
func (a *Agent) Tools() []tool.Definition {
	return a.tools
}

// Provider returns the agent's provider adapter.
func (a *Agent) Provider() provider.Provider {
	return a.provider
}

// SystemPrompt renders the persona into the system instruction sent with
// every request. The rendering is pure: the same persona always yields the
// same prompt, regardless of how many turns precede it.
func (a *Agent) SystemPrompt() string {
	return fmt.Sprintf("You are %s. Your goal is to be %s", a.name, a.description)
}

// BeginConversation registers a fresh conversation and returns its id.
// Run begins one lazily when no conversation option is given; use this when
// the caller needs the id up front to continue a session.
func (a *Agent) BeginConversation() uuid.UUID {
	return a.conversations.Begin()
}

// History returns the ordered message history of a conversation.
func (a *Agent) History(id uuid.UUID) ([]messages.Message, error) {
	return a.conversations.Serialize(id)
}

func (a *Agent) String() string {
	return fmt.Sprintf("%s: %s", a.name, a.description)
}
