// Package provider defines the abstraction over hosted chat-completion
// vendors. A Provider translates one uniform request shape into a
// vendor-specific network call and translates the result back into either a
// single assistant string or a stream of text fragments.
//
// Design decisions:
//   - Capability interface: variants (direct vendor, proxy vendor) implement
//     the same three methods and differ only in construction.
//   - Explicit options: Request enumerates the recognized sampling knobs and
//     keeps a generic Extra escape hatch for provider-specific fields, instead
//     of an untyped passthrough bag.
//   - Streaming events: CompleteStream yields a channel of StreamEvent values
//     in arrival order. Chunk carries one incremental fragment, Done carries
//     the full concatenation exactly once at upstream completion, and Error is
//     terminal. Nothing is reordered or buffered beyond fragment extraction.
//   - Tagged errors: UnknownModelError, ProviderError, and EmptyResponseError
//     cover the failure taxonomy; transport errors pass through unchanged with
//     no retry, backoff, or circuit breaking.
//
// Example usage:
//
//	p, err := openai.New(openai.Config{APIKey: key, Model: "gpt-4o-mini"})
//	if err != nil {
//	    return err
//	}
//
//	events, err := p.CompleteStream(ctx, provider.Request{
//	    Instructions: "You are a helpful assistant",
//	    Messages:     history,
//	})
//	if err != nil {
//	    return err
//	}
//	for event := range events {
//	    switch e := event.(type) {
//	    case provider.Chunk:
//	        fmt.Print(e.Text)
//	    case provider.Done:
//	        // e.Text holds the full reply
//	    case provider.Error:
//	        return e.Err
//	    }
//	}
package provider
