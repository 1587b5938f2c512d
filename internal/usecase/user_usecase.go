// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"terrasense/internal/domain/entity"
)

// UserUsecase defines the interface for identity-related business operations.
type UserUsecase interface {
	// Register creates a new user account. Fails with the email-taken error
	// when the address is already registered.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a bearer token. Unknown email and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetByID returns a user's record. Callers may only read their own.
	GetByID(ctx context.Context, callerID, userID int64) (*entity.User, error)
}

// --- Input/Output DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50"`
}

// LoginInput defines the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the authenticated user and their bearer token.
type LoginOutput struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}
