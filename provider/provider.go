package provider

import (
	"context"

	"github.com/casualjim/brainstorm/messages"
)

// Provider is the uniform contract over one upstream chat-completion
// endpoint. Implementations validate their model at construction time, so no
// availability re-check happens per call.
type Provider interface {
	// Complete sends a synchronous completion request and returns the
	// assistant text. It fails with ProviderError when the upstream response
	// carries an error envelope and with EmptyResponseError when it returns
	// zero choices.
	Complete(ctx context.Context, req Request) (string, error)

	// CompleteStream opens a server-streamed request and returns a lazy,
	// finite, non-restartable sequence of events in arrival order. The
	// channel is closed when the upstream signals completion or a terminal
	// Error event has been delivered. Cancel ctx to stop reading mid-stream.
	CompleteStream(ctx context.Context, req Request) (<-chan StreamEvent, error)

	// Version returns a display string "{providerDisplayName} (Model: {model})".
	// Pure, no side effect.
	Version() string
}

// Request encapsulates one chat completion request. Zero-valued optional
// fields are omitted from the outbound call.
type Request struct {
	// Model overrides the provider's configured default model for this call.
	Model string

	// Instructions is the system prompt, synthesized into a leading system
	// message on the wire. The conversation history itself never contains it.
	Instructions string

	// Messages is the serialized conversation history, in turn order.
	Messages []messages.Message

	// Sampling knobs. Nil means provider default.
	Temperature     *float64
	TopP            *float64
	MaxOutputTokens *int64

	// Extra carries provider-specific request fields that are set verbatim on
	// the outbound JSON body.
	Extra map[string]any

	// Prevents unkeyed literals
	_ struct{}
}
