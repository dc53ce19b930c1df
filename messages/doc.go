// Package messages defines the conversational turn model used throughout
// brainstorm: a Message carries a role, content, and a timestamp, and content
// can be either a plain string or a sequence of typed parts (text, image).
//
// Design decisions:
//   - Closed role set: system, user, assistant, tool. Nothing else round-trips.
//   - Flexible content: ContentOrParts serializes a plain string as a JSON
//     string and multi-part content as a JSON array, matching the wire shape
//     chat-completion providers expect.
//   - Extensible parts: new content kinds implement the ContentPart interface
//     and declare themselves through a "type" discriminator.
//   - Keyed initialization: struct{} padding fields force keyed literals so
//     adding fields stays backward compatible.
//
// Example usage:
//
//	// Simple text turn
//	msg := messages.User("Hello, world!")
//
//	// Multi-part turn with text and an image reference
//	msg := messages.UserParts(
//	    messages.Text("What is in this picture?"),
//	    messages.Image("https://example.com/cat.jpg"),
//	)
//
// Messages are immutable once appended to a conversation; constructors stamp
// the creation time and callers should not mutate the result afterwards.
package messages
