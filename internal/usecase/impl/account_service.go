// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"passport/config"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo     repository.AccountRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	defaultLocation string
	logger          *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	defaultLocation := ""
	if params.Config != nil && params.Config.Account != nil {
		defaultLocation = params.Config.Account.DefaultLocation
	}

	return &accountService{
		accountRepo:     params.AccountRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		defaultLocation: defaultLocation,
		logger:          params.Logger,
	}
}

// Register orchestrates the complete account registration process.
//
// Validation failures come back verbatim from the entity constructor. The
// existence pre-check and the insert are two separate store operations; the
// unique email index closes the race between them, and a duplicate-key insert
// is reported as the same conflict as the pre-check.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Debug("Starting registration", slog.String("email", input.Email))

	account, err := entity.NewAccount(
		input.Email,
		input.Password,
		input.ConfirmPassword,
		input.FirstName,
		input.LastName,
		srv.hasher,
		srv.defaultLocation,
	)
	if err != nil {
		srv.logger.Warn("Registration validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	_, err = srv.accountRepo.FindByEmail(ctx, account.Email)
	if err == nil {
		srv.logger.Warn("Registration conflict", slog.String("email", account.Email))

		return nil, domainerrors.ErrAccountExists
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing account")
	}

	if err := srv.accountRepo.Insert(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the race to a concurrent registration; the unique index
			// is authoritative.
			return nil, domainerrors.ErrAccountExists
		}

		return nil, errors.Wrap(err, "failed to insert account")
	}

	srv.logger.Info("Account registered", slog.String("accountID", account.ID.String()))

	return &usecase.RegisterOutput{Account: account.View()}, nil
}

// Login verifies the credentials and issues a session token.
//
// Unknown email and wrong password both fail unauthorized; only the message
// text differs, which is an inherited contract rather than a hardening goal.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(input.Email)
	srv.logger.Debug("Starting login", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.logger.Warn("Login failed, no account", slog.String("email", email))

			return nil, domainerrors.ErrNoAccount
		}

		return nil, errors.Wrap(err, "failed to find account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login failed, bad password", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.logger.Info("Login successful", slog.String("accountID", account.ID.String()))

	return &usecase.LoginOutput{Token: token}, nil
}

// GetAccount returns the sanitized view of an account to its owner.
func (srv *accountService) GetAccount(ctx context.Context, input *usecase.GetAccountInput) (*usecase.GetAccountOutput, error) {
	account, err := srv.authorizeOwner(ctx, input.AccountID, input.AuthHeader)
	if err != nil {
		return nil, err
	}

	return &usecase.GetAccountOutput{Account: account.View()}, nil
}

// UpdateAccount applies a partial field merge to the owner's account and
// relays the store's acknowledgment.
func (srv *accountService) UpdateAccount(ctx context.Context, input *usecase.UpdateAccountInput) (*usecase.UpdateAccountOutput, error) {
	if _, err := srv.authorizeOwner(ctx, input.AccountID, input.AuthHeader); err != nil {
		return nil, err
	}

	if err := srv.accountRepo.UpdateByID(ctx, input.AccountID, input.Fields); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.logger.Info("Account updated", slog.String("accountID", input.AccountID.String()))

	return &usecase.UpdateAccountOutput{Acknowledged: true}, nil
}

// authorizeOwner runs the shared ownership flow: parse the bearer token out
// of the header, look the account up, then verify the token against it. The
// lookup happens before verification so an unknown id is a 404 rather than a
// blanket 401; a token issued to any other account fails the verify step.
func (srv *accountService) authorizeOwner(ctx context.Context, id uuid.UUID, authHeader string) (*entity.Account, error) {
	tokenString, ok := parseBearer(authHeader)
	if !ok {
		srv.logger.Warn("Missing or malformed authorization header", slog.String("accountID", id.String()))

		return nil, domainerrors.ErrUnauthorized
	}

	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.tokenService.Verify(tokenString, account) {
		srv.logger.Warn("Token rejected for account", slog.String("accountID", id.String()))

		return nil, domainerrors.ErrUnauthorized
	}

	return account, nil
}

// parseBearer extracts the token from an Authorization header value.
func parseBearer(header string) (string, bool) {
	token := strings.TrimPrefix(header, bearerPrefix)
	if token == header || token == "" {
		return "", false
	}

	return token, true
}
