// Package tool defines the named callable descriptors an agent can carry.
// A Definition pairs a name and description with a Go function and can
// reflect that function's signature into a JSON schema for providers that
// accept tool declarations.
//
// The core never invokes a tool automatically; execution is left to the
// caller. Definitions exist so personas can advertise capabilities and so
// external collaborators have enough metadata to dispatch calls themselves.
package tool
