package topic

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/SergeyParamoshkin/newsdesk/internal/database"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

// Store runs the topic queries. Topics are read-only through this API.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Select lists all topics ordered by slug.
func (s *Store) Select(ctx context.Context) ([]model.Topic, error) {
	query, _, err := sq.Select("slug", "description").
		From("topics").
		OrderBy("slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topics query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.MapError(err)
	}
	defer rows.Close()

	var topics []model.Topic

	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("scan topic row: %w", err)
		}

		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, database.MapError(err)
	}

	return topics, nil
}
