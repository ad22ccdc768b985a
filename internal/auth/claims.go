package auth

import (
	"time"

	"airport-booking/concourse/internal/constants"
)

// UserClaims is what authentication middleware stores on the request context
type UserClaims interface {
	UserID() uint
	Role() constants.Role
	Source() constants.RequestSource
	IsAdmin() bool
	// TokenID and ExpiresAt are only meaningful for bearer tokens
	TokenID() string
	ExpiresAt() time.Time
}

type JWTClaims struct {
	UserIDValue uint
	RoleValue   constants.Role
	JTI         string
	Expiry      time.Time
}

func (c *JWTClaims) UserID() uint                    { return c.UserIDValue }
func (c *JWTClaims) Role() constants.Role            { return c.RoleValue }
func (c *JWTClaims) Source() constants.RequestSource { return constants.RequestSourceJWT }
func (c *JWTClaims) IsAdmin() bool                   { return c.RoleValue == constants.RoleAdmin }
func (c *JWTClaims) TokenID() string                 { return c.JTI }
func (c *JWTClaims) ExpiresAt() time.Time            { return c.Expiry }

type APIKeyClaims struct {
	UserIDValue uint
	RoleValue   constants.Role
	KeyID       int64
}

func (c *APIKeyClaims) UserID() uint                    { return c.UserIDValue }
func (c *APIKeyClaims) Role() constants.Role            { return c.RoleValue }
func (c *APIKeyClaims) Source() constants.RequestSource { return constants.RequestSourceAPIKey }
func (c *APIKeyClaims) IsAdmin() bool                   { return c.RoleValue == constants.RoleAdmin }
func (c *APIKeyClaims) TokenID() string                 { return "" }
func (c *APIKeyClaims) ExpiresAt() time.Time            { return time.Time{} }
