package user

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/SergeyParamoshkin/newsdesk/internal/database"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

// Store runs the user queries. Users are read-only through this API.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Select lists all users.
func (s *Store) Select(ctx context.Context) ([]model.User, error) {
	query, _, err := sq.Select("username", "name", "avatar_url").
		From("users").
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build users query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.MapError(err)
	}
	defer rows.Close()

	var users []model.User

	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, database.MapError(err)
	}

	return users, nil
}

// GetByUsername fetches a single user; an unknown username is not-found.
func (s *Store) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query, args, err := sq.Select("username", "name", "avatar_url").
		From("users").
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var u model.User
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
		return nil, database.MapError(err)
	}

	return &u, nil
}
