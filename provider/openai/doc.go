// Package openai implements the direct-vendor provider variant: requests go
// to the OpenAI platform endpoint with bearer authentication. Construction
// validates the configured model against the model registry before any
// client is created.
package openai
