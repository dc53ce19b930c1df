package openrouter

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
const ProviderName = "openrouter"

// DefaultBaseURL is the OpenRouter chat-completion endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Config bundles the credential, default model, and site identification for
// one provider instance. SiteURL and SiteName become the HTTP-Referer and
// X-Title headers OpenRouter uses for app attribution.
type Config struct {
	APIKey   string
	Model    string
	BaseURL  string
	SiteURL  string
	SiteName string

	// Prevents unkeyed literals
	_ struct{}
}

var _ provider.Provider = (*Provider)(nil)

// Provider is the proxy-vendor chat completion adapter.
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

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	ropts := []option.RequestOption{option.WithBaseURL(baseURL)}
	if cfg.APIKey != "" {
		ropts = append(ropts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.SiteURL != "" {
		ropts = append(ropts, option.WithHeader("HTTP-Referer", cfg.SiteURL))
	}
	if cfg.SiteName != "" {
		ropts = append(ropts, option.WithHeader("X-Title", cfg.SiteName))
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
	return fmt.Sprintf("OpenRouter Provider (Model: %s)", p.Model())
}
