package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinelog/apperr"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	user, err := svc.Register(context.Background(), "Alice", " Alice@Example.COM ", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	got, err := svc.Login(context.Background(), "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other Alice", "ALICE@example.com", "pw2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	for _, tt := range []struct{ name, email, password string }{
		{"", "a@b.c", "pw"},
		{"Alice", "", "pw"},
		{"Alice", "a@b.c", ""},
	} {
		_, err := svc.Register(context.Background(), tt.name, tt.email, tt.password)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	// An unknown email gets the same answer as a wrong password.
	_, err = svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestAuthService_LoginBanned(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	require.NoError(t, repo.SetBanned(context.Background(), user.ID, true))

	_, err = svc.Login(context.Background(), "alice@example.com", "hunter22")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), user.ID, "Alice B", "ALICE.B@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, "alice.b@example.com", updated.Email)

	_, err = svc.UpdateProfile(context.Background(), user.ID, "", "x@y.z")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}
