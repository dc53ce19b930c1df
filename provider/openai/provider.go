package openai

import (
	"context"
	"fmt"

	"github.com/casualjim/brainstorm/internal/oaiwire"
	"github.com/casualjim/brainstorm/models"
	"github.com/casualjim/brainstorm/provider"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ProviderName is the registry key for this variant's models.
const ProviderName = "openai"

// Config bundles the credential, default model, and optional endpoint
// overrides for one provider instance.
type Config struct {
	// APIKey authenticates against the platform. Leave empty to fall back to
	// the client's environment-based resolution.
	APIKey string

	// Model is the default model for this provider. It must resolve to a
	// known registry entry or construction fails.
	Model string

	// BaseURL overrides the platform endpoint; used by tests and gateways.
	BaseURL string

	// Headers are attached to every outbound request.
	Headers map[string]string

	// Prevents unkeyed literals
	_ struct{}
}

var _ provider.Provider = (*Provider)(nil)

// Provider is the direct-vendor chat completion adapter.
type Provider struct {
	core oaiwire.Core
}

// New validates the config against the model registry and builds the
// adapter. It fails with UnknownModelError before any network client is
// created when the model is not registered.
func New(cfg Config) (*Provider, error) {
	if _, ok := models.Default().Lookup(cfg.Model, ProviderName); !ok {
		return nil, provider.UnknownModelError{Model: cfg.Model}
	}

	var ropts []option.RequestOption
	if cfg.APIKey != "" {
		ropts = append(ropts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		ropts = append(ropts, option.WithBaseURL(cfg.BaseURL))
	}
	for key, value := range cfg.Headers {
		ropts = append(ropts, option.WithHeader(key, value))
	}

	return &Provider{
		core: oaiwire.NewCore(openai.NewClient(ropts...), cfg.Model),
	}, nil
}

// Complete sends a synchronous completion request and returns the assistant text.
func (p *Provider) Complete(ctx context.Context, req provider.Request) (string, error) {
	return p.core.Complete(ctx, req)
}

// CompleteStream opens a server-streamed completion request.
func (p *Provider) CompleteStream(ctx context.Context, req provider.Request) (<-chan provider.StreamEvent, error) {
	return p.core.CompleteStream(ctx, req)
}

// Model returns the configured default model identifier.
func (p *Provider) Model() string {
	return p.core.Model()
}

// Version returns the display string for this adapter. Pure, no side effect.
func (p *Provider) Version() string {
	return fmt.Sprintf("OpenAI Provider (Model: %s)", p.Model())
}
