package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/migrations"
)

// defaultRetryDelays is the back-off schedule for retryable driver errors.
var defaultRetryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// DB wraps a *sql.DB together with everything the repositories need to talk
// to one concrete backend: its migration dialect, its squirrel placeholder
// format and its error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	retryDelays        []time.Duration
	logger             *logger.Logger
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the backend placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// withRetry runs op and repeats it after each delay in db.retryDelays while
// the classifier reports the failure as retryable.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, delay := range db.retryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Dur("delay", delay).Msg("retryable database error, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		err = op()
	}

	return err
}
