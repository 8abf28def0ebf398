package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Service authenticates the single demo account. The password is hashed
// once at startup so the plaintext never sticks around.
type Service struct {
	sessions     SessionStore
	tokens       tokenIssuer
	username     string
	passwordHash []byte
}

func NewService(sessions SessionStore, tokens tokenIssuer, username, password string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		sessions:     sessions,
		tokens:       tokens,
		username:     username,
		passwordHash: hash,
	}, nil
}

// Login checks the credentials, activates the persisted session flag and
// issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if err := s.sessions.Activate(ctx); err != nil {
		return "", err
	}
	return s.tokens.GenerateToken(username)
}

func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Session reports whether the persisted login flag is set.
func (s *Service) Session(ctx context.Context) bool {
	return s.sessions.IsActive(ctx)
}
