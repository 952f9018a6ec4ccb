package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrEmptyConnectionString    = errors.New("empty postgres connection string, use PG_CONN_URL env var")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrInvalidTableQuery        = errors.New("invalid table query")
	ErrTableLookupFailed        = errors.New("table lookup failed")
)

// IsNotFoundError reports whether err is pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsUndefinedTableError reports SQLSTATE 42P01, raised when an exists or
// unique rule names a table that does not exist.
func IsUndefinedTableError(err error) bool {
	return hasCode(err, "42P01")
}

// IsUndefinedColumnError reports SQLSTATE 42703.
func IsUndefinedColumnError(err error) bool {
	return hasCode(err, "42703")
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
