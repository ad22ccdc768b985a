package services

import (
	"context"
	"testing"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/models/dtos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterLoginLogout(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	user, err := s.users.Register(ctx, dtos.RegisterRequest{Email: "  Pilot@Example.COM ", Password: "long-enough"})
	require.NoError(t, err)
	assert.Equal(t, "pilot@example.com", user.Email)
	assert.False(t, user.IsStaff)

	token, err := s.users.Login(ctx, dtos.TokenRequest{Email: "PILOT@example.com", Password: "long-enough"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)

	verified, err := s.signer.ValidateToken(ctx, token.Access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.UserID)

	me, err := s.users.Me(ctx, verified.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, me.Email)

	require.NoError(t, s.users.Logout(ctx, verified.TokenID, verified.ExpiresAt))
	_, err = s.signer.ValidateToken(ctx, token.Access)
	assert.ErrorIs(t, err, common.ErrTokenRevoked)
}

func TestUserService_RegisterValidation(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.users.Register(ctx, dtos.RegisterRequest{Email: "not-an-email", Password: "short"})
	require.Error(t, err)
	fields := common.FieldsOf(err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")

	_, err = s.users.Register(ctx, dtos.RegisterRequest{Email: "USER@example.com", Password: "long-enough"})
	assert.True(t, common.IsConstraintError(err))
}

func TestUserService_LoginFailuresLookAlike(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	_, err := s.users.Register(ctx, dtos.RegisterRequest{Email: "a@example.com", Password: "long-enough"})
	require.NoError(t, err)

	_, wrongPassword := s.users.Login(ctx, dtos.TokenRequest{Email: "a@example.com", Password: "nope-nope"})
	_, unknownUser := s.users.Login(ctx, dtos.TokenRequest{Email: "b@example.com", Password: "long-enough"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.Equal(t, 401, common.StatusFor(wrongPassword))
}
