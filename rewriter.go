package newsdesk

import "context"

// Rewriter sends a prompt to a text-completion model and returns its reply.
type Rewriter interface {
	// Rewrite returns the model's reply to prompt as a single text blob.
	// A failed call returns EUPSTREAM with the remote status and payload
	// attached when they are known.
	Rewrite(ctx context.Context, prompt string) (string, error)
}
