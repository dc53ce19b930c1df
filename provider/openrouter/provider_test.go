package openrouter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casualjim/brainstorm/messages"
	"github.com/casualjim/brainstorm/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnknownModel(t *testing.T) {
	p, err := New(Config{APIKey: "test-key", Model: "made-up/model"})
	require.Error(t, err)
	assert.Nil(t, p)

	var ume provider.UnknownModelError
	require.ErrorAs(t, err, &ume)
	assert.Equal(t, "made-up/model", ume.Model)
}

func TestProvider_Version(t *testing.T) {
	p, err := New(Config{APIKey: "test-key", Model: "anthropic/claude-3.5-sonnet"})
	require.NoError(t, err)
	assert.Equal(t, "OpenRouter Provider (Model: anthropic/claude-3.5-sonnet)", p.Version())
}

func TestProvider_IdentificationHeaders(t *testing.T) {
	var gotReferer, gotTitle string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("HTTP-Referer")
		gotTitle = r.Header.Get("X-Title")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices": [{"index": 0, "message": {"role": "assistant", "content": "hi"}}]}`)
	}))
	t.Cleanup(server.Close)

	p, err := New(Config{
		APIKey:   "test-key",
		Model:    "google/gemini-2.0-flash-001",
		BaseURL:  server.URL + "/api/v1",
		SiteURL:  "https://example.com",
		SiteName: "Example App",
	})
	require.NoError(t, err)

	text, err := p.Complete(context.Background(), provider.Request{
		Messages: []messages.Message{messages.User("hello")},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
	assert.Equal(t, "https://example.com", gotReferer)
	assert.Equal(t, "Example App", gotTitle)
}

func TestProvider_NoHeadersWhenUnset(t *testing.T) {
	var sawReferer, sawTitle bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawReferer = r.Header["Http-Referer"]
		_, sawTitle = r.Header["X-Title"]

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices": [{"index": 0, "message": {"role": "assistant", "content": "hi"}}]}`)
	}))
	t.Cleanup(server.Close)

	p, err := New(Config{
		APIKey:  "test-key",
		Model:   "openrouter/quasar-alpha",
		BaseURL: server.URL + "/api/v1",
	})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), provider.Request{
		Messages: []messages.Message{messages.User("hello")},
	})
	require.NoError(t, err)
	assert.False(t, sawReferer)
	assert.False(t, sawTitle)
}

func TestProvider_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error": {"message": "insufficient credits", "code": "402"}}`)
	}))
	t.Cleanup(server.Close)

	p, err := New(Config{APIKey: "test-key", Model: "deepseek/deepseek-r1", BaseURL: server.URL + "/api/v1"})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), provider.Request{
		Messages: []messages.Message{messages.User("hello")},
	})
	var perr provider.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "insufficient credits", perr.Message)
	assert.Equal(t, "402", perr.Code)
}

func TestDefaultBaseURL(t *testing.T) {
	assert.Equal(t, "https://openrouter.ai/api/v1", DefaultBaseURL)
}
