// Package models holds the static model registry: descriptive metadata for
// every model the providers are willing to talk to, loaded once per process
// from an embedded definition document.
//
// The registry is immutable after load and therefore safe for concurrent
// reads without synchronization. Lookup order across providers is the
// declaration order of models.json, which is stable and documented so tests
// can rely on it.
package models
