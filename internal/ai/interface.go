package ai

import (
	"context"
)

// NoteSuggester defines the contract for the dispatch assistant.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type NoteSuggester interface {
	// SuggestStatusNote drafts a short human-readable note for a status
	// change, given the booking snapshot and its recent history.
	SuggestStatusNote(ctx context.Context, input NoteInput) (string, error)
}
