package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by read paths when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// ErrNoSavedState is returned by StateStore.LoadState when nothing has been
// persisted yet. Callers treat it (and any other load error) as "start from
// the default state".
var ErrNoSavedState = errors.New("no saved state")

// LLMClient defines how the classifier talks to a completion service.
type LLMClient interface {
	GenerateContent(ctx context.Context, system, user string) (string, error)
}

// StateStore persists the whole conversation aggregate as an opaque snapshot
// under one key, and the UI theme flag under another. Serialization failures
// on load must never propagate as fatal errors.
type StateStore interface {
	SaveState(ctx context.Context, state *ConversationState) error
	LoadState(ctx context.Context) (*ConversationState, error)
	SaveTheme(ctx context.Context, dark bool) error
	LoadTheme(ctx context.Context) (bool, error)
}
