package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/pkg/apperrors"
	"github.com/sagarshinde/studyhub/internal/pkg/kvstore"
)

// SessionRepository persists the single active session under the "user"
// key. There is at most one session per store instance; a new login
// replaces the previous one.
type SessionRepository struct {
	store kvstore.Store
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(store kvstore.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Current returns the persisted session, or ErrSessionNotFound.
func (r *SessionRepository) Current(ctx context.Context) (*models.Session, error) {
	raw, err := r.store.Get(ctx, kvstore.KeyUser)
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Save persists the session, replacing any previous one.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyUser, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing when none exists is fine.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, kvstore.KeyUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
