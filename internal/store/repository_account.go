package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

var accountColumns = []string{"id", "name", "email", "password_hash", "created_at"}

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It works against the "accounts" table on any backend [DB] supports; the
// placeholder format and error classification come from the connection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// FindByEmail selects the single account whose email equals email.
//
// Error handling:
//   - no matching row → [ErrNoAccountWasFound].
//   - any other driver-level error → [ErrStoreUnavailable] and
//     [ErrExecutingQuery] wrapping the cause.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt)
	})

	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrNoAccountWasFound
	default:
		log.Err(err).Str("func", "*accountRepository.FindByEmail").Msg("error querying account")
		return models.Account{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}
}

// Create inserts account. The unique index on email turns a concurrent
// duplicate signup into [ErrEmailAlreadyExists].
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(models.Account{}.TableName()).
		Columns(accountColumns...).
		Values(account.ID, account.Name, account.Email, account.PasswordHash, account.CreatedAt).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*accountRepository.Create").Msg("email already registered")
			return models.Account{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*accountRepository.Create").Msg("error inserting account")
		return models.Account{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return account, nil
}
