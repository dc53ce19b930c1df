package provider

import "fmt"

// UnknownModelError indicates a requested model is absent from the model
// registry. It is raised at provider construction and is fatal to that
// construction attempt; no network client is created.
type UnknownModelError struct {
	Model string
}

func (e UnknownModelError) Error() string {
	return fmt.Sprintf("unknown model %q", e.Model)
}

// ProviderError carries an explicit error envelope returned by the upstream.
// Message and code are preserved exactly as received. The core never retries.
type ProviderError struct {
	Message string
	Code    string
}

func (e ProviderError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("provider error: %s", e.Message)
	}
	return fmt.Sprintf("provider error (code %s): %s", e.Code, e.Message)
}

// EmptyResponseError indicates the upstream returned zero choices. Callers
// treat it the same way they treat ProviderError.
type EmptyResponseError struct {
	Model string
}

func (e EmptyResponseError) Error() string {
	return fmt.Sprintf("model %q returned an empty response", e.Model)
}
