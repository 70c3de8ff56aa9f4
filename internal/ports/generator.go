package ports

import "context"

// TextGenerator produces free text for a prompt. It backs the chat widget and
// is the only networked dependency; callers substitute fallback copy on error.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
