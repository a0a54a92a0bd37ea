package article

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/SergeyParamoshkin/newsdesk/internal/database"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

// sortColumns is the closed set of columns the list view may be sorted by.
// Only members of this set are ever interpolated into statement text.
var sortColumns = map[string]struct{}{
	"created_at": {},
	"author":     {},
	"votes":      {},
	"title":      {},
	"topic":      {},
}

const (
	defaultSortBy = "created_at"
	defaultOrder  = "DESC"
)

// normalizeSort applies defaults and validates sort_by and order against
// their allow-lists. It runs before any statement is built, so a rejected
// value never reaches the database.
func normalizeSort(sortBy, order string) (string, string, error) {
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	if order == "" {
		order = defaultOrder
	}

	if _, ok := sortColumns[sortBy]; !ok {
		return "", "", fmt.Errorf("%w: cannot sort articles by %q", database.ErrBadRequest, sortBy)
	}

	order = strings.ToUpper(order)
	if order != "ASC" && order != "DESC" {
		return "", "", fmt.Errorf("%w: invalid sort order %q", database.ErrBadRequest, order)
	}

	return sortBy, order, nil
}

// Store runs the article queries against the shared connection pool.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Select lists articles, optionally filtered by topic and ordered by a
// validated sort column and direction. The topic value is bound as a
// parameter; sort column and direction are interpolated only after
// normalizeSort constrained them to the allow-lists.
//
// An empty result with a topic filter is ambiguous between "valid topic, no
// matches" and "no such topic", so only then is the topics table probed.
func (s *Store) Select(ctx context.Context, topic, sortBy, order string) ([]model.Article, error) {
	sortBy, order, err := normalizeSort(sortBy, order)
	if err != nil {
		return nil, err
	}

	qb := sq.Select(
		"articles.article_id",
		"articles.title",
		"articles.topic",
		"articles.author",
		"articles.created_at",
		"articles.article_img_url",
		"articles.votes",
		"COUNT(comments.article_id)::INT AS comment_count",
	).
		From("articles").
		LeftJoin("comments ON comments.article_id = articles.article_id").
		GroupBy("articles.article_id").
		OrderBy("articles." + sortBy + " " + order).
		PlaceholderFormat(sq.Dollar)

	if topic != "" {
		qb = qb.Where(sq.Eq{"articles.topic": topic})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build articles query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.MapError(err)
	}
	defer rows.Close()

	var articles []model.Article

	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ArticleID,
			&a.Title,
			&a.Topic,
			&a.Author,
			&a.CreatedAt,
			&a.ArticleImgURL,
			&a.Votes,
			&a.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("scan article row: %w", err)
		}

		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, database.MapError(err)
	}

	if len(articles) == 0 && topic != "" {
		if err := database.Exists(ctx, s.db, "topics", "slug", topic); err != nil {
			return nil, err
		}
	}

	return articles, nil
}

// GetByID fetches a single article including its body and derived comment
// count.
func (s *Store) GetByID(ctx context.Context, articleID int) (*model.Article, error) {
	query, args, err := sq.Select(
		"articles.article_id",
		"articles.title",
		"articles.topic",
		"articles.author",
		"articles.body",
		"articles.created_at",
		"articles.article_img_url",
		"articles.votes",
		"COUNT(comments.article_id)::INT AS comment_count",
	).
		From("articles").
		LeftJoin("comments ON comments.article_id = articles.article_id").
		Where(sq.Eq{"articles.article_id": articleID}).
		GroupBy("articles.article_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build article query: %w", err)
	}

	var a model.Article
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Topic,
		&a.Author,
		&a.Body,
		&a.CreatedAt,
		&a.ArticleImgURL,
		&a.Votes,
		&a.CommentCount,
	); err != nil {
		return nil, database.MapError(err)
	}

	return &a, nil
}

// UpdateVotes applies the delta server-side in a single statement, so
// concurrent increments never race on a previously read value. A missing row
// surfaces as not-found.
func (s *Store) UpdateVotes(ctx context.Context, articleID, delta int) (*model.Article, error) {
	query, args, err := sq.Update("articles").
		Set("votes", sq.Expr("votes + ?", delta)).
		Where(sq.Eq{"article_id": articleID}).
		Suffix("RETURNING article_id, title, topic, author, body, created_at, article_img_url, votes").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build votes update: %w", err)
	}

	var a model.Article
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Topic,
		&a.Author,
		&a.Body,
		&a.CreatedAt,
		&a.ArticleImgURL,
		&a.Votes,
	); err != nil {
		return nil, database.MapError(err)
	}

	return &a, nil
}
