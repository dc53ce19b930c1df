// Package conversation provides the in-memory turn history for chat sessions.
// A Store keeps one ordered, append-only message sequence per conversation id.
//
// Conversations live for the lifetime of the process; nothing is persisted.
// Identifiers are UUIDv7, so uniqueness holds for the process lifetime with
// the collision probability of a 128-bit random identifier.
//
// The store map is safe for concurrent use, but appends to a single
// conversation are not serialized: callers must not issue concurrent runs
// against the same conversation id, or turn order becomes racy.
package conversation
