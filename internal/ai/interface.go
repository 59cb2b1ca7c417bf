// README: Reply-provider contract for the upstream LLM gateway.
package ai

import "context"

// ReplyProvider produces a reply for one user utterance. Implementations
// talk to an external model; callers own the timeout on ctx.
type ReplyProvider interface {
	Reply(ctx context.Context, userID, message string) (string, error)
	Close() error
}
