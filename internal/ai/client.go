package ai

import "context"

// Client is the external text-generation collaborator. One prompt in,
// free-text completion out. Callers own the fallback when a call or the
// parse of its output fails.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
