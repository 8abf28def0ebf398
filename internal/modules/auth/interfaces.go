package auth

import "context"

type SessionStore interface {
	Activate(ctx context.Context) error
	Clear(ctx context.Context) error
	IsActive(ctx context.Context) bool
}

type tokenIssuer interface {
	GenerateToken(username string) (string, error)
}
