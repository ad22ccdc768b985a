package common

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)

// AccessClaims is the payload of a bearer access token
type AccessClaims struct {
	Admin bool `json:"adm"`
	jwt.RegisteredClaims
}

// IssuedToken is a freshly signed access token
type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// VerifiedToken is what ValidateToken extracts from a good token
type VerifiedToken struct {
	UserID    uint
	Admin     bool
	TokenID   string
	ExpiresAt time.Time
}

// TokenSigner issues and validates HS256 access tokens
type TokenSigner struct {
	secretKey []byte
	ttl       time.Duration
	store     TokenStore
	now       func() time.Time
}

func NewTokenSigner(secretKey []byte, ttl time.Duration, store TokenStore) *TokenSigner {
	return &TokenSigner{
		secretKey: secretKey,
		ttl:       ttl,
		store:     store,
		now:       time.Now,
	}
}

// Issue signs a new access token for userID
func (s *TokenSigner) Issue(userID uint, admin bool) (*IssuedToken, error) {
	tokenID := uuid.New().String()
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := AccessClaims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &IssuedToken{Token: tokenString, TokenID: tokenID, ExpiresAt: expiresAt.UTC()}, nil
}

// ValidateToken checks signature, expiry and revocation
func (s *TokenSigner) ValidateToken(ctx context.Context, tokenString string) (*VerifiedToken, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || claims.ID == "" {
		return nil, ErrTokenInvalid
	}

	revoked, err := s.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return &VerifiedToken{
		UserID:    uint(userID),
		Admin:     claims.Admin,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke blocks tokenID for the rest of its lifetime
func (s *TokenSigner) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.store.Revoke(ctx, tokenID, expiresAt.Sub(s.now()))
}
