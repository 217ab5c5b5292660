package service

import (
	"passport/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	AccountID string `json:"id"`
	Email     string `json:"email"`
	SessionID string `json:"session"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the token format and signing details from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded token asserting the account's
	// identity.
	Issue(account *entity.Account) (string, error)

	// Verify checks signature and expiry, and additionally requires the
	// token's id and email claims to match the given account. A token is
	// only ever valid for the account it was issued to, so an email change
	// invalidates earlier tokens. Any structural failure reports false.
	Verify(token string, account *entity.Account) bool
}
