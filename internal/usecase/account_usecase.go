// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the raw fields required to register a new account.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// GetAccountInput identifies the account to retrieve and carries the raw
// Authorization header; the usecase owns bearer parsing and ownership checks.
type GetAccountInput struct {
	AccountID  uuid.UUID
	AuthHeader string
}

// UpdateAccountInput carries the optionally-present fields to change,
// alongside the same ownership proof as GetAccountInput.
type UpdateAccountInput struct {
	AccountID  uuid.UUID
	AuthHeader string
	Fields     entity.PartialUpdate
}

// --- Output DTOs ---

// RegisterOutput returns the sanitized view of the newly created account.
type RegisterOutput struct {
	Account *entity.AccountView
}

// LoginOutput returns the issued session token.
type LoginOutput struct {
	Token string
}

// GetAccountOutput returns the sanitized view of the account.
type GetAccountOutput struct {
	Account *entity.AccountView
}

// UpdateAccountOutput relays the store's update acknowledgment.
type UpdateAccountOutput struct {
	Acknowledged bool
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetAccount(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error)
	UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error)
}
