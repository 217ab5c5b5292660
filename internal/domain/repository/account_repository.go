// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when no account matches the criteria.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned when an insert violates the unique index on
// the normalized email. The storage layer is the authority on uniqueness;
// the service's pre-check only exists for a cleaner conflict path.
var ErrDuplicateEmail = errors.New("email already registered")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Insert persists a new account. Returns ErrDuplicateEmail when the
	// unique email index rejects the document.
	Insert(ctx context.Context, account *entity.Account) error

	// UpdateByID applies a partial update to the account, touching only the
	// present fields. An empty update is a no-op that still succeeds.
	UpdateByID(ctx context.Context, id uuid.UUID, update entity.PartialUpdate) error
}
