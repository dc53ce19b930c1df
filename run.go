package brainstorm

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"strings"

	"github.com/casualjim/brainstorm/messages"
	"github.com/casualjim/brainstorm/pkg/slogx"
	"github.com/casualjim/brainstorm/provider"
	"github.com/fogfish/opts"
	"github.com/google/uuid"
)

// ErrNoProvider is returned by Run when the agent was built without a
// provider adapter.
var ErrNoProvider = errors.New("agent has no provider configured")

type runParams struct {
	conversation    uuid.UUID
	model           string
	temperature     *float64
	topP            *float64
	maxOutputTokens *int64
	extra           map[string]any
}

// RunOption configures a single run invocation.
type RunOption = opts.Option[runParams]

// InConversation continues an existing conversation instead of lazily
// beginning a new one.
var InConversation = opts.ForName[runParams, uuid.UUID]("conversation")

// UsingModel overrides the agent's default model for this run.
var UsingModel = opts.ForName[runParams, string]("model")

// Temperature sets the sampling temperature for this run.
func Temperature(v float64) RunOption {
	return opts.Type[runParams](func(o *runParams) error {
		o.temperature = &v
		return nil
	})
}

// TopP sets the nucleus sampling parameter for this run.
func TopP(v float64) RunOption {
	return opts.Type[runParams](func(o *runParams) error {
		o.topP = &v
		return nil
	})
}

// MaxOutputTokens caps the completion length for this run.
func MaxOutputTokens(n int64) RunOption {
	return opts.Type[runParams](func(o *runParams) error {
		o.maxOutputTokens = &n
		return nil
	})
}

// Extra sets provider-specific request fields passed through verbatim.
func Extra(fields map[string]any) RunOption {
	return opts.Type[runParams](func(o *runParams) error {
		o.extra = fields
		return nil
	})
}

// Run appends the user turn, sends the serialized history to the provider,
// and appends the assistant reply before returning it. Provider failures
// propagate unchanged and leave the conversation without an assistant turn.
func (a *Agent) Run(ctx context.Context, input string, options ...RunOption) (string, error) {
	convID, req, err := a.prepare(input, options)
	if err != nil {
		return "", err
	}

	slog.Debug("completing chat turn",
		slog.String("agent", a.name),
		slogx.Stringer("conversation", convID),
		slog.String("model", req.Model),
	)

	reply, err := a.provider.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	if err := a.conversations.Append(convID, messages.Assistant(reply)); err != nil {
		return "", err
	}
	return reply, nil
}

// RunStream behaves like Run but returns the conversation id and a lazy,
// finite, non-restartable sequence of assistant text fragments in arrival
// order. The full concatenation is appended to the conversation exactly once,
// after the sequence is fully drained.
//
// Caveat: abandoning the sequence early stops further network reads but also
// skips the append, leaving the assistant turn unrecorded. Cancel ctx to
// release the underlying stream when breaking out.
func (a *Agent) RunStream(ctx context.Context, input string, options ...RunOption) (uuid.UUID, iter.Seq2[string, error], error) {
	convID, req, err := a.prepare(input, options)
	if err != nil {
		return uuid.Nil, nil, err
	}

	slog.Debug("streaming chat turn",
		slog.String("agent", a.name),
		slogx.Stringer("conversation", convID),
		slog.String("model", req.Model),
	)

	events, err := a.provider.CompleteStream(ctx, req)
	if err != nil {
		return uuid.Nil, nil, err
	}

	seq := func(yield func(string, error) bool) {
		var full string
		var completed bool
		for event := range events {
			switch e := event.(type) {
			case provider.Chunk:
				if !yield(e.Text, nil) {
					return
				}
			case provider.Done:
				full = e.Text
				completed = true
			case provider.Error:
				yield("", e.Err)
				return
			}
		}
		if !completed {
			return
		}
		if err := a.conversations.Append(convID, messages.Assistant(full)); err != nil {
			yield("", err)
		}
	}
	return convID, seq, nil
}

// RunStreamFunc drains a streaming run, invoking handler for every fragment,
// and returns the full concatenated reply. A nil handler just accumulates.
func (a *Agent) RunStreamFunc(ctx context.Context, input string, handler func(fragment string), options ...RunOption) (string, error) {
	_, seq, err := a.RunStream(ctx, input, options...)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for fragment, err := range seq {
		if err != nil {
			return "", err
		}
		if handler != nil {
			handler(fragment)
		}
		buf.WriteString(fragment)
	}
	return buf.String(), nil
}

// prepare applies run options, lazily begins a conversation, appends the
// user turn, and builds the provider request from the serialized history.
func (a *Agent) prepare(input string, options []RunOption) (uuid.UUID, provider.Request, error) {
	if a.provider == nil {
		return uuid.Nil, provider.Request{}, ErrNoProvider
	}

	var rp runParams
	if err := opts.Apply(&rp, options); err != nil {
		return uuid.Nil, provider.Request{}, err
	}

	convID := rp.conversation
	if convID == uuid.Nil {
		convID = a.conversations.Begin()
	}

	if err := a.conversations.Append(convID, messages.User(input)); err != nil {
		return uuid.Nil, provider.Request{}, err
	}

	history, err := a.conversations.Serialize(convID)
	if err != nil {
		return uuid.Nil, provider.Request{}, err
	}

	return convID, provider.Request{
		Model:           a.resolveModel(rp.model),
		Instructions:    a.SystemPrompt(),
		Messages:        history,
		Temperature:     rp.temperature,
		TopP:            rp.topP,
		MaxOutputTokens: rp.maxOutputTokens,
		Extra:           rp.extra,
	}, nil
}

// resolveModel picks the model for one run: explicit run option, then the
// agent's configured default, then the hard-coded fallback.
func (a *Agent) resolveModel(override string) string {
	if override != "" {
		return override
	}
	if a.model != "" {
		return a.model
	}
	return DefaultModel
}
