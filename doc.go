// Package brainstorm is a minimal chat orchestration layer: an Agent pairs a
// persona with a chat-completion provider, tracks conversation history, and
// optionally streams incremental output back to the caller.
//
// An agent owns its conversations and is their sole mutator. Each Run appends
// the user turn, sends the serialized history to the provider with a
// synthesized system prompt, and appends the assistant reply on success.
// Streaming runs deliver fragments lazily and record the full reply only once
// the stream has been drained.
//
// Example usage:
//
//	p, err := openai.New(openai.Config{
//	    APIKey: os.Getenv("OPENAI_API_KEY"),
//	    Model:  "gpt-4o-mini",
//	})
//	if err != nil {
//	    return err
//	}
//
//	agent := brainstorm.New(
//	    brainstorm.Name("Nova"),
//	    brainstorm.Description("concise and factual"),
//	    brainstorm.WithProvider(p),
//	)
//
//	reply, err := agent.Run(ctx, "Tell me a joke!")
//
// Concurrency: a single Run is one logical thread of control. The agent does
// not serialize concurrent runs against the same conversation identifier;
// callers must not issue them, or append order becomes racy.
package brainstorm
