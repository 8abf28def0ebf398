package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	active   bool
	activErr error
}

func (f *fakeSessions) Activate(ctx context.Context) error {
	if f.activErr != nil {
		return f.activErr
	}
	f.active = true
	return nil
}

func (f *fakeSessions) Clear(ctx context.Context) error {
	f.active = false
	return nil
}

func (f *fakeSessions) IsActive(ctx context.Context) bool {
	return f.active
}

type fakeTokens struct{}

func (fakeTokens) GenerateToken(username string) (string, error) {
	return "token-for-" + username, nil
}

func TestLoginSuccess(t *testing.T) {
	sessions := &fakeSessions{}
	s, err := NewService(sessions, fakeTokens{}, "swiftdriveclone", "7777")
	require.NoError(t, err)

	token, err := s.Login(context.Background(), "swiftdriveclone", "7777")
	require.NoError(t, err)

	assert.Equal(t, "token-for-swiftdriveclone", token)
	assert.True(t, s.Session(context.Background()))
}

func TestLoginWrongPassword(t *testing.T) {
	sessions := &fakeSessions{}
	s, err := NewService(sessions, fakeTokens{}, "swiftdriveclone", "7777")
	require.NoError(t, err)

	_, err = s.Login(context.Background(), "swiftdriveclone", "1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, sessions.active, "a failed login must not activate the session")
}

func TestLoginWrongUsername(t *testing.T) {
	s, err := NewService(&fakeSessions{}, fakeTokens{}, "swiftdriveclone", "7777")
	require.NoError(t, err)

	_, err = s.Login(context.Background(), "admin", "7777")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := &fakeSessions{active: true}
	s, err := NewService(sessions, fakeTokens{}, "swiftdriveclone", "7777")
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background()))
	assert.False(t, s.Session(context.Background()))
}
