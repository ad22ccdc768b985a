package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db/repositories"
	"airport-booking/concourse/internal/models/dtos"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users  *repositories.UserRepository
	signer *common.TokenSigner
}

func NewUserService(users *repositories.UserRepository, signer *common.TokenSigner) *UserService {
	return &UserService{users: users, signer: signer}
}

func (s *UserService) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.UserView, error) {
	var c fieldChecks
	email := strings.ToLower(c.text("email", req.Email))
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			c.v.Add("email", "enter a valid email address")
		}
	}
	if len(req.Password) < constants.MinPasswordLength {
		c.v.Add("password", constants.MsgPasswordTooShort)
	}
	if err := c.err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := gormModels.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if common.IsConstraintError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	view := dtos.UserOf(user)
	return &view, nil
}

// Login exchanges credentials for an access token. Every credential failure looks the same.
func (s *UserService) Login(ctx context.Context, req dtos.TokenRequest) (*dtos.TokenView, error) {
	invalid := &common.AuthorizationError{Message: constants.MsgInvalidCredentials}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if common.IsNotFoundError(err) {
			return nil, invalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, invalid
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	issued, err := s.signer.Issue(user.ID, user.IsStaff)
	if err != nil {
		return nil, err
	}
	return &dtos.TokenView{Access: issued.Token, TokenType: "Bearer", ExpiresAt: issued.ExpiresAt}, nil
}

func (s *UserService) Me(ctx context.Context, userID uint) (*dtos.UserView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := dtos.UserOf(*user)
	return &view, nil
}

// Logout revokes a bearer token for the rest of its lifetime
func (s *UserService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	if err := s.signer.Revoke(ctx, tokenID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
