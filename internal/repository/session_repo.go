package repository

import "context"

const sessionKey = "auth_flag"

// SessionRepository persists the single login flag. Anything other than the
// literal string "true" means logged out.
type SessionRepository struct {
	kv KVStore
}

func NewSessionRepository(kv KVStore) *SessionRepository {
	return &SessionRepository{kv: kv}
}

func (r *SessionRepository) Activate(ctx context.Context) error {
	return r.kv.Set(ctx, sessionKey, "true")
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.kv.Remove(ctx, sessionKey)
}

func (r *SessionRepository) IsActive(ctx context.Context) bool {
	v, err := r.kv.Get(ctx, sessionKey)
	if err != nil {
		return false
	}
	return v == "true"
}
