// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
)

// sessionTokenMonths is the fixed issuance window: tokens expire twelve
// months after they are signed.
const sessionTokenMonths = 12

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte // Server-held symmetric secret for HS256 signing.
}

// NewJWTService is the constructor for jwtService. The signing secret is a
// deployment secret; construction fails fast when it is missing.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	return &jwtService{secret: []byte(cfg.SecretKey.Token)}, nil
}

// Issue builds the session claims for the account and signs them with HS256.
// The expiry is an absolute timestamp computed from the issuance time.
func (s *jwtService) Issue(account *entity.Account) (string, error) {
	now := time.Now()

	claims := service.Claims{
		AccountID: account.ID.String(),
		Email:     account.Email,
		SessionID: account.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.AddDate(0, sessionTokenMonths, 0)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify decodes the token and checks signature, expiry, and that the id and
// email claims name the given account. Any failure, structural or otherwise,
// reports false rather than an error; the caller treats all of them as the
// same unauthorized condition.
func (s *jwtService) Verify(tokenString string, account *entity.Account) bool {
	claims := new(service.Claims)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Pin the signing method; a token claiming another algorithm is
		// rejected outright.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}

	// A token is only valid for the account it was issued to: an email
	// change invalidates every previously issued token.
	return claims.AccountID == account.ID.String() && claims.Email == account.Email
}
