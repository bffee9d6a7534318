package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/store"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/internal/validators"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It validates input, hashes and checks passwords through a
// CredentialManager and hands out tokens through a TokenService.
type authService struct {
	// accountRepository is the data-access layer used to create and look up accounts.
	accountRepository store.AccountRepository

	// credentialManager hashes passwords at signup and checks them at login.
	credentialManager crypto.CredentialManager

	// tokenService issues tokens on login and verifies presented ones.
	tokenService TokenService

	validator   validators.Validator
	idGenerator IDGenerator
	now         func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given collaborators.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	accountRepository store.AccountRepository,
	credentialManager crypto.CredentialManager,
	tokenService TokenService,
	logger *logger.Logger,
) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		accountRepository: accountRepository,
		credentialManager: credentialManager,
		tokenService:      tokenService,
		validator:         validators.NewAuthValidator(),
		idGenerator:       utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// Signup registers a new account.
//
// Returns the persisted account or:
//   - a *validators.ValidationError if the request is incomplete or invalid.
//   - store.ErrEmailAlreadyExists if the email is taken, including when a
//     concurrent signup wins the race between lookup and insert.
//   - ErrAccountNotCreated wrapping the cause of any other failure.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("signup request rejected")
		return models.Account{}, err
	}

	_, err := a.accountRepository.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Debug().Msg("signup for an already registered email")
		return models.Account{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoAccountWasFound):
		log.Err(err).Msg("account lookup failed during signup")
		return models.Account{}, fmt.Errorf("%w: %w", ErrAccountNotCreated, err)
	}

	passwordHash, err := a.credentialManager.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrAccountNotCreated, err)
	}

	account := models.Account{
		ID:           a.idGenerator.Generate(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    a.now().UTC(),
	}

	created, err := a.accountRepository.Create(ctx, account)
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.Account{}, store.ErrEmailAlreadyExists
	case err != nil:
		log.Err(err).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrAccountNotCreated, err)
	}

	log.Info().Str("account_id", created.ID).Msg("account created")
	return created, nil
}

// Login checks the credentials and returns a signed token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// the caller cannot tell which one happened.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("login request rejected")
		return "", err
	}

	account, err := a.accountRepository.FindByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, store.ErrNoAccountWasFound):
		log.Debug().Msg("login for unknown email")
		return "", ErrInvalidCredentials
	case err != nil:
		log.Err(err).Msg("account lookup failed during login")
		return "", fmt.Errorf("account lookup failed: %w", err)
	}

	if !a.credentialManager.Verify(req.Password, account.PasswordHash) {
		log.Debug().Str("account_id", account.ID).Msg("wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(ctx, account.Claims())
	if err != nil {
		log.Err(err).Str("account_id", account.ID).Msg("token issue failed")
		return "", err
	}

	return token, nil
}

// Verify delegates to the TokenService.
func (a *authService) Verify(ctx context.Context, token string) (models.Claims, error) {
	return a.tokenService.Verify(ctx, token)
}
