package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Exists probes for a single row with the given column value. It
// disambiguates an empty filtered result set ("valid filter, no matches")
// from a filter value that references nothing real.
//
// Table and column are interpolated into the statement text, so callers must
// pass literal names only, never request input. The value is always a bound
// parameter.
func Exists(ctx context.Context, db *sql.DB, table, column string, value interface{}) error {
	query, args, err := sq.Select("1").
		From(table).
		Where(sq.Eq{column: value}).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build exists query: %w", err)
	}

	var one int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: no %s with %s %v", ErrNotFound, table, column, value)
		}

		return err
	}

	return nil
}
