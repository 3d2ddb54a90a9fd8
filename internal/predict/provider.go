package predict

import "context"

// Provider sends a prompt to a language model and returns the raw text
// response. Used only by AdvisorPredictor; not exported to the rest of
// the system.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
