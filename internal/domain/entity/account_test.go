package entity_test

import (
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	mockSvc "passport/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The full hasher service and its mock both satisfy the narrow contract
// NewAccount consumes; entity itself depends on no other domain package
// beyond errors and validate.
var _ entity.PasswordHasher = (*mockSvc.MockPasswordHasher)(nil)

func TestNewAccount_Success(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.On("Hash", "password1234").Return("$argon2id$hashed", nil).Once()

	before := time.Now().UTC()
	account, err := entity.NewAccount("User@Example.com", "password1234", "password1234", "Jane", "Doe", hasher, "Unknown")
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", account.Email)
	assert.Equal(t, "$argon2id$hashed", account.PasswordHash)
	assert.Equal(t, "Jane", account.FirstName)
	assert.Equal(t, "Doe", account.LastName)
	assert.Equal(t, entity.StatusActive, account.Status)
	assert.Equal(t, "Unknown", account.DefaultLocation)
	assert.NotEqual(t, uuid.Nil, account.ID)

	_, err = uuid.Parse(account.SessionID)
	assert.NoError(t, err)

	assert.False(t, account.CreatedDate.Before(before))
	assert.Equal(t, account.CreatedDate, account.Expiration)
	assert.Empty(t, account.ResetCode)
	assert.Empty(t, account.Avatar)
	assert.Nil(t, account.BillingLink)
}

func TestNewAccount_CheckOrder(t *testing.T) {
	// The hasher mock carries no expectations, so any hashing attempt on a
	// failed validation fails the test.
	hasher := mockSvc.NewMockPasswordHasher(t)

	// Mismatch wins over every other problem.
	_, err := entity.NewAccount("not-an-email", "short", "shorter", "", "", hasher, "")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)

	// With matching passwords, length is reported before the email.
	_, err = entity.NewAccount("not-an-email", "short", "short", "", "", hasher, "")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)

	_, err = entity.NewAccount("not-an-email", "password1234", "password1234", "", "", hasher, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
}

func TestNewAccount_EmailLowercasedBeforeValidation(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.On("Hash", "password1234").Return("$argon2id$hashed", nil).Once()

	// The pattern only admits lowercase letters, so an uppercase address
	// passes only because normalization runs first.
	account, err := entity.NewAccount("USER@EXAMPLE.COM", "password1234", "password1234", "", "", hasher, "")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", account.Email)
}

func TestNewAccount_HasherFailure(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.On("Hash", "password1234").Return("", assert.AnError).Once()

	_, err := entity.NewAccount("user@example.com", "password1234", "password1234", "", "", hasher, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrHashingFailed)
}

func TestView_OmitsSecrets(t *testing.T) {
	account := &entity.Account{
		ID:              uuid.New(),
		Email:           "user@example.com",
		PasswordHash:    "$argon2id$hashed",
		FirstName:       "Jane",
		LastName:        "Doe",
		Status:          entity.StatusActive,
		ResetCode:       "reset-123",
		Avatar:          "avatar.png",
		DefaultLocation: "Unknown",
		SessionID:       uuid.NewString(),
	}

	view := account.View()

	assert.Equal(t, account.ID.String(), view.ID)
	assert.Equal(t, "user@example.com", view.Email)
	assert.Equal(t, "Jane", view.FirstName)
	assert.Equal(t, "Doe", view.LastName)
	assert.Equal(t, "active", view.Status)
	assert.Equal(t, "reset-123", view.ResetCode)
	assert.Equal(t, "avatar.png", view.Avatar)
	assert.Equal(t, "Unknown", view.DefaultLocation)
}

func TestPartialUpdate_SetDocument(t *testing.T) {
	first := "Jane"
	location := "Taipei"

	update := entity.PartialUpdate{FirstName: &first, DefaultLocation: &location}
	set := update.SetDocument()

	assert.Equal(t, map[string]any{
		"firstName":       "Jane",
		"defaultLocation": "Taipei",
	}, set)
	assert.False(t, update.IsEmpty())

	empty := entity.PartialUpdate{}
	assert.Empty(t, empty.SetDocument())
	assert.True(t, empty.IsEmpty())
}

func TestPartialUpdate_ClearsToEmptyString(t *testing.T) {
	// A present-but-empty value is a real write, distinct from an absent one.
	blank := ""
	set := entity.PartialUpdate{LastName: &blank}.SetDocument()
	assert.Equal(t, map[string]any{"lastName": ""}, set)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "active", entity.StatusActive.String())
	assert.True(t, entity.StatusActive.IsValid())
	assert.True(t, entity.StatusSuspended.IsValid())
	assert.False(t, entity.Status("deleted").IsValid())
}
