package service

import (
	"errors"

	"terrasense/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned when a token verifies structurally but is past
// its expiry. The boundary reports it separately from other failures.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid covers every other verification failure: bad signature,
// malformed structure, wrong algorithm.
var ErrTokenInvalid = errors.New("token invalid")

// Claims carries the identity data embedded in a signed bearer token.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken issues a signed token carrying the user's identity claims.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken verifies a token string and returns its claims. Fails
	// with ErrTokenExpired or ErrTokenInvalid.
	ValidateToken(tokenString string) (*Claims, error)
}
