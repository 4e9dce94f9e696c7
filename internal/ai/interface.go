package ai

import (
	"context"
)

// TextGenerator defines the contract for the text-generation backend.
// This interface allows swapping different AI providers (Gemini, OpenAI, etc.)
// and stubbing the model in tests.
type TextGenerator interface {
	// GenerateText sends one prompt to the model and returns the raw reply text.
	// The reply is free-form; callers are responsible for extracting structure from it.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
