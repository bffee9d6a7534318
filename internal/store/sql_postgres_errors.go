package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed call is worth
// another attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors and for anything caused
	// by the data itself, such as constraint or syntax failures.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// conflicts, a server that is still starting up.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the SQLSTATE
// codes reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports failures of classes 08 (connection) and 40 (transaction
// rollback) as retryable, together with a server that refuses connections
// for now. A failed dial before any SQLSTATE is known is retryable as well.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return Retryable
	}

	code := postgresError(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code), pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow, code == pgerrcode.TooManyConnections:
		return Retryable
	default:
		return NonRetryable
	}
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}
