// Package session persists per-session state in a bbolt database
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

var bucketSessions = []byte("sessions")

// Store is a bbolt-backed SessionStore. Each session ID maps to one
// JSON-encoded SessionState record.
type Store struct {
	db     *bolt.DB
	logger *common.Logger
}

// NewStore opens (creating if needed) the session database at path.
func NewStore(path string, logger *common.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session data directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSessions)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sessions bucket: %w", err)
	}

	logger.Info().Str("path", path).Msg("Session store opened")
	return &Store{db: db, logger: logger}, nil
}

// Load retrieves a session's state. Unknown sessions come back as a fresh
// state; defaults are applied either way so callers never see nil fields.
func (s *Store) Load(_ context.Context, sessionID string) (*models.SessionState, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSessions).Get([]byte(sessionID)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	state := &models.SessionState{}
	if raw != nil {
		if err := json.Unmarshal(raw, state); err != nil {
			// Corrupt record: start the session over rather than failing.
			s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("Discarding unreadable session record")
			state = &models.SessionState{}
		}
	}
	state.ApplyDefaults()
	return state, nil
}

// Save persists the full session state, replacing any prior record.
func (s *Store) Save(_ context.Context, sessionID string, state *models.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", sessionID, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSessions).Put([]byte(sessionID), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", sessionID, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ensure Store implements SessionStore
var _ interfaces.SessionStore = (*Store)(nil)
