// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/validate"

	"github.com/google/uuid"
)

// PasswordHasher is the hashing contract NewAccount consumes. It is the
// consumer-side slice of the full hasher service; concrete hashers and their
// mocks satisfy it implicitly.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Account is the core entity in the system, representing one registered user.
// Exactly one account may exist per normalized (lowercased) email.
type Account struct {
	ID              uuid.UUID    // The unique identifier for the account, assigned at creation and immutable.
	Email           string       // The login key, always stored lowercased.
	PasswordHash    string       // Argon2id hash of the password; never the plaintext.
	FirstName       string       // Free text, preserved as given.
	LastName        string       // Free text, preserved as given.
	Status          Status       // Account state, defaults to active at creation.
	Expiration      time.Time    // Set at creation; no expiry-driven behavior is defined yet.
	CreatedDate     time.Time    // Set once at creation and immutable.
	ResetCode       string       // Optional, written by the password-reset flow; empty when absent.
	Avatar          string       // Optional, written by the avatar-upload flow; empty when absent.
	DefaultLocation string       // Free text, defaults to a configured placeholder.
	SessionID       string       // Opaque per-account session marker embedded in issued tokens.
	BillingLink     *BillingLink // Optional external billing reference; nil unless billing integration ran.
}

// BillingLink is an opaque reference into an external billing system.
// The core only preserves it; no billing logic lives here.
type BillingLink struct {
	CustomerID         string
	ProductID          string
	SubscriptionID     string
	SubscriptionStatus string
	SubscriptionType   string
}

// AccountView is the external representation of an Account. It never carries
// the password hash, the session marker, or any token material.
type AccountView struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Status          string `json:"status"`
	ResetCode       string `json:"resetCode"`
	Avatar          string `json:"avatar"`
	DefaultLocation string `json:"defaultLocation"`
}

// NewAccount validates the raw registration fields and constructs an Account.
//
// The email is lowercased before any check. The checks run in a fixed order,
// passwords-match, then password-length, then email-valid, and the first
// failure short-circuits with its specific error; callers and tests rely on
// that ordering for deterministic messages. On success the password is hashed
// and never retained in plaintext.
func NewAccount(email, password, confirmPassword, firstName, lastName string, hasher PasswordHasher, defaultLocation string) (*Account, error) {
	normalizedEmail := strings.ToLower(email)

	if !validate.PasswordsMatch(password, confirmPassword) {
		return nil, domainerrors.ErrPasswordMismatch
	}
	if !validate.IsPasswordLongEnough(password) {
		return nil, domainerrors.ErrPasswordTooShort
	}
	if !validate.IsValidEmail(normalizedEmail) {
		return nil, domainerrors.ErrInvalidEmail
	}

	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrHashingFailed.WrapMessage(err.Error())
	}

	now := time.Now().UTC()

	return &Account{
		ID:              uuid.New(),
		Email:           normalizedEmail,
		PasswordHash:    passwordHash,
		FirstName:       firstName,
		LastName:        lastName,
		Status:          StatusActive,
		Expiration:      now,
		CreatedDate:     now,
		DefaultLocation: defaultLocation,
		SessionID:       uuid.NewString(),
	}, nil
}

// View projects the account into its external representation.
func (a *Account) View() *AccountView {
	return &AccountView{
		ID:              a.ID.String(),
		Email:           a.Email,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Status:          a.Status.String(),
		ResetCode:       a.ResetCode,
		Avatar:          a.Avatar,
		DefaultLocation: a.DefaultLocation,
	}
}
