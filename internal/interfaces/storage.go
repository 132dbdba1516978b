package interfaces

import (
	"context"

	"github.com/bobmcallan/pulse/internal/models"
)

// SessionStore persists per-session state keyed by session ID.
type SessionStore interface {
	// Load retrieves the state for a session. Unknown sessions and absent
	// fields come back with defaults already applied.
	Load(ctx context.Context, sessionID string) (*models.SessionState, error)

	// Save persists the full session state.
	Save(ctx context.Context, sessionID string, state *models.SessionState) error

	Close() error
}
