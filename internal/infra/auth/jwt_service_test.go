package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = secret

	return cfg
}

func testAccount() *entity.Account {
	return &entity.Account{
		ID:        uuid.New(),
		Email:     "user@example.com",
		SessionID: uuid.NewString(),
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))
	assert.Error(t, err)

	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_IssueVerifyRoundTrip(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	account := testAccount()

	token, err := svc.Issue(account)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.True(t, svc.Verify(token, account))
}

func TestJWTService_VerifyRejectsOtherAccount(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	account := testAccount()
	token, err := svc.Issue(account)
	require.NoError(t, err)

	// Same signature, different identity: still rejected.
	other := testAccount()
	assert.False(t, svc.Verify(token, other))

	// Id matches but the email changed since issuance.
	changed := *account
	changed.Email = "renamed@example.com"
	assert.False(t, svc.Verify(token, &changed))
}

func TestJWTService_VerifyRejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	account := testAccount()
	token, err := svc.Issue(account)
	require.NoError(t, err)

	assert.False(t, svc.Verify(token+"x", account))
	assert.False(t, svc.Verify("", account))
	assert.False(t, svc.Verify("not.a.token", account))

	// A token signed with a different secret fails the signature check.
	otherSvc, err := NewJWTService(testConfig("other-secret"))
	require.NoError(t, err)
	foreign, err := otherSvc.Issue(account)
	require.NoError(t, err)
	assert.False(t, svc.Verify(foreign, account))
}

func TestJWTService_VerifyRejectsExpiredToken(t *testing.T) {
	account := testAccount()

	// Hand-sign an already expired token with the same claims layout.
	claims := service.Claims{
		AccountID: account.ID.String(),
		Email:     account.Email,
		SessionID: account.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	assert.False(t, svc.Verify(expired, account))
}

func TestJWTService_VerifyRejectsWrongAlgorithm(t *testing.T) {
	account := testAccount()

	// alg=none tokens must never pass.
	claims := service.Claims{
		AccountID: account.ID.String(),
		Email:     account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	assert.False(t, svc.Verify(unsigned, account))
}

func TestJWTService_TokenExpiryIsTwelveMonthsOut(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	account := testAccount()
	token, err := svc.Issue(account)
	require.NoError(t, err)

	claims := new(service.Claims)
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	want := time.Now().AddDate(0, 12, 0)
	assert.WithinDuration(t, want, claims.ExpiresAt.Time, time.Minute)
}
