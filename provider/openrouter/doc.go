// Package openrouter implements the proxy-vendor provider variant: requests
// go to the OpenRouter aggregation endpoint, which speaks the same
// chat-completion dialect as the direct vendor. The variant differs only in
// base endpoint and the optional identification headers (HTTP-Referer,
// X-Title) attached to every outbound request.
package openrouter
