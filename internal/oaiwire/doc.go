// Package oaiwire holds the openai-go wire translation shared by the
// provider variants: request building, error envelope mapping, and the SSE
// stream pump. Both the direct OpenAI adapter and the OpenRouter proxy
// adapter speak the same chat-completion dialect, so the translation lives
// here once.
package oaiwire
