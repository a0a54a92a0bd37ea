package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes surfaced through query execution.
const (
	// foreignKeyViolationCode fires when an insert references a row that
	// does not exist (unknown author or parent article).
	foreignKeyViolationCode = "23503"

	// invalidTextRepresentationCode fires when a bound value cannot be
	// cast to the column type.
	invalidTextRepresentationCode = "22P02"
)

// Sentinel errors every store wraps with %w. The boundary layer matches on
// these with errors.Is and never sees raw driver errors.
var (
	// ErrBadRequest marks input that failed type, format, or allow-list
	// validation.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound marks a well-formed reference that resolves to no row.
	ErrNotFound = errors.New("not found")
)

// MapError reclassifies a driver error into one of the sentinel errors,
// wrapping the original for context. A foreign key violation is deliberately
// reported as not-found: the client referenced an entity that is absent, it
// did not send a malformed request.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: foreign key violation (%s): %v",
				ErrNotFound, pgErr.ConstraintName, err)
		case invalidTextRepresentationCode:
			return fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
	}

	return err
}

// RowsAffected returns ErrNotFound when an exec matched no rows. Used by
// deletes and updates where zero affected rows means the target is absent.
func RowsAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%w: no such %s", ErrNotFound, entity)
	}

	return nil
}
