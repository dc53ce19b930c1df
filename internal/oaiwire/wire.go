package oaiwire

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/casualjim/brainstorm/messages"
	"github.com/casualjim/brainstorm/provider"
	"github.com/go-openapi/strfmt"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

// Core wraps one openai-go client plus the configured default model. The
// provider variants embed it to share Complete and CompleteStream.
type Core struct {
	client *openai.Client
	model  string
}

// NewCore builds a Core around an already-configured client.
func NewCore(client *openai.Client, model string) Core {
	return Core{client: client, model: model}
}

// Model returns the configured default model identifier.
func (c Core) Model() string {
	return c.model
}

// Complete sends a synchronous chat completion and returns the assistant
// text of the first choice.
func (c Core) Complete(ctx context.Context, req provider.Request) (string, error) {
	params, ropts := c.buildRequest(req)

	chat, err := c.client.Chat.Completions.New(ctx, params, ropts...)
	if err != nil {
		return "", MapError(err)
	}
	if len(chat.Choices) == 0 {
		return "", provider.EmptyResponseError{Model: c.resolveModel(req)}
	}
	return chat.Choices[0].Message.Content, nil
}

// CompleteStream opens a server-streamed completion and pumps its chunks
// onto the returned channel. The channel closes after a Done or Error event.
func (c Core) CompleteStream(ctx context.Context, req provider.Request) (<-chan provider.StreamEvent, error) {
	params, ropts := c.buildRequest(req)

	events := make(chan provider.StreamEvent, 10)
	go func() {
		defer close(events)
		strm := c.client.Chat.Completions.NewStreaming(ctx, params, ropts...)
		pump(ctx, strm, events)
	}()
	return events, nil
}

func (c Core) resolveModel(req provider.Request) string {
	if req.Model != "" {
		return req.Model
	}
	return c.model
}

func (c Core) buildRequest(req provider.Request) (openai.ChatCompletionNewParams, []option.RequestOption) {
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(toOpenAI(req.Instructions, req.Messages)),
		Model:    openai.F(c.resolveModel(req)),
		N:        openai.Int(1),
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.TopP != nil {
		params.TopP = openai.Float(*req.TopP)
	}
	if req.MaxOutputTokens != nil {
		params.MaxTokens = openai.Int(*req.MaxOutputTokens)
	}

	var ropts []option.RequestOption
	for key, value := range req.Extra {
		ropts = append(ropts, option.WithJSONSet(key, value))
	}
	return params, ropts
}

func toOpenAI(instructions string, msgs []messages.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs)+1)
	if strings.TrimSpace(instructions) != "" {
		result = append(result, openai.SystemMessage(instructions))
	}

	for _, msg := range msgs {
		switch msg.Role {
		case messages.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content.Text()))
		case messages.RoleUser:
			if msg.Content.Content != "" {
				result = append(result, openai.UserMessageParts(openai.TextPart(msg.Content.Content)))
				continue
			}
			parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(msg.Content.Parts))
			for _, part := range msg.Content.Parts {
				switch part := part.(type) {
				case messages.TextContentPart:
					parts = append(parts, openai.ChatCompletionContentPartTextParam{
						Text: openai.String(part.Text),
						Type: openai.F(openai.ChatCompletionContentPartTextTypeText),
					})
				case messages.ImageContentPart:
					parts = append(parts, openai.ChatCompletionContentPartImageParam{
						ImageURL: openai.F(openai.ChatCompletionContentPartImageImageURLParam{
							URL: openai.String(part.URL),
						}),
						Type: openai.F(openai.ChatCompletionContentPartImageTypeImageURL),
					})
				}
			}
			if len(parts) > 0 {
				result = append(result, openai.UserMessageParts(parts...))
			}
		case messages.RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content.Text()))
		case messages.RoleTool:
			result = append(result, openai.ToolMessage(msg.ToolCallID, msg.Content.Text()))
		}
	}
	return result
}

// pump drains the SSE stream into the events channel. Fragments are
// forwarded in arrival order; the concatenation is accumulated for the final
// Done event. A mid-stream failure ends the stream with a terminal Error.
func pump(ctx context.Context, strm *ssestream.Stream[openai.ChatCompletionChunk], events chan<- provider.StreamEvent) {
	defer strm.Close()

	if err := strm.Err(); err != nil {
		send(ctx, events, provider.Error{Err: MapError(err), Timestamp: now()})
		return
	}

	var acc strings.Builder
	for strm.Next() {
		if err := ctx.Err(); err != nil {
			send(ctx, events, provider.Error{Err: err, Timestamp: now()})
			return
		}

		chunk := strm.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		acc.WriteString(delta)
		if !send(ctx, events, provider.Chunk{Text: delta, Timestamp: now()}) {
			return
		}
	}

	if err := strm.Err(); err != nil {
		send(ctx, events, provider.Error{Err: MapError(err), Timestamp: now()})
		return
	}
	if err := ctx.Err(); err != nil {
		send(ctx, events, provider.Error{Err: err, Timestamp: now()})
		return
	}

	send(ctx, events, provider.Done{Text: acc.String(), Timestamp: now()})
}

// send delivers one event unless ctx is cancelled first. An abandoned
// consumer leaves the channel buffer full; a plain send would then block the
// pump past cancellation and keep the upstream connection open.
func send(ctx context.Context, events chan<- provider.StreamEvent, event provider.StreamEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

// MapError translates an upstream error envelope into a ProviderError,
// preserving message and code unchanged. Transport errors pass through.
func MapError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return provider.ProviderError{Message: apiErr.Message, Code: apiErr.Code}
	}
	return err
}

func now() strfmt.DateTime {
	return strfmt.DateTime(time.Now())
}
