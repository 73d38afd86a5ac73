package generate

import "context"

// Generator is the single capability the translation pipeline consumes:
// send one prompt, get one text reply. Implementations may keep their own
// session state (chat history, key rotation); the pipeline treats that as
// opaque and never branches on backend identity.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
