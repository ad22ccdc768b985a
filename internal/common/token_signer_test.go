package common

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(ttl time.Duration) *TokenSigner {
	return NewTokenSigner([]byte("test-secret"), ttl, NewMemoryTokenStore(time.Minute))
}

func TestTokenSigner_IssueAndValidate(t *testing.T) {
	s := newTestSigner(time.Hour)

	issued, err := s.Issue(42, true)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.TokenID)

	got, err := s.ValidateToken(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), got.UserID)
	assert.True(t, got.Admin)
	assert.Equal(t, issued.TokenID, got.TokenID)
}

func TestTokenSigner_RejectsWrongSecret(t *testing.T) {
	issued, err := newTestSigner(time.Hour).Issue(1, false)
	require.NoError(t, err)

	other := NewTokenSigner([]byte("other"), time.Hour, NewMemoryTokenStore(time.Minute))
	_, err = other.ValidateToken(context.Background(), issued.Token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenSigner_RejectsExpired(t *testing.T) {
	s := newTestSigner(time.Minute)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	issued, err := s.Issue(1, false)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(context.Background(), issued.Token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenSigner_RejectsOtherAlgorithms(t *testing.T) {
	s := newTestSigner(time.Hour)
	claims := AccessClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		ID:        "x",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = s.ValidateToken(context.Background(), unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenSigner_Revoke(t *testing.T) {
	s := newTestSigner(time.Hour)
	ctx := context.Background()

	issued, err := s.Issue(7, false)
	require.NoError(t, err)
	require.NoError(t, s.Revoke(ctx, issued.TokenID, issued.ExpiresAt))

	_, err = s.ValidateToken(ctx, issued.Token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}
