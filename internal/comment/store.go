package comment

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/SergeyParamoshkin/newsdesk/internal/database"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

const returningColumns = "RETURNING comment_id, body, author, article_id, votes, created_at"

// Store runs the comment queries against the shared connection pool.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SelectByArticle lists the comments of an article, newest first. Article
// existence is the caller's concern; an article without comments yields an
// empty result.
func (s *Store) SelectByArticle(ctx context.Context, articleID int) ([]model.Comment, error) {
	query, args, err := sq.Select("comment_id", "body", "author", "article_id", "votes", "created_at").
		From("comments").
		Where(sq.Eq{"article_id": articleID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build comments query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.MapError(err)
	}
	defer rows.Close()

	var comments []model.Comment

	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.CommentID, &c.Body, &c.Author, &c.ArticleID, &c.Votes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}

		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, database.MapError(err)
	}

	return comments, nil
}

// Insert creates a comment and returns the stored row with its generated id,
// zero vote count and timestamp. An unknown author or article trips the
// foreign key constraint, which MapError reclassifies as not-found.
func (s *Store) Insert(ctx context.Context, articleID int, username, body string) (*model.Comment, error) {
	query, args, err := sq.Insert("comments").
		Columns("author", "body", "article_id").
		Values(username, body, articleID).
		Suffix(returningColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build comment insert: %w", err)
	}

	var c model.Comment
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&c.CommentID,
		&c.Body,
		&c.Author,
		&c.ArticleID,
		&c.Votes,
		&c.CreatedAt,
	); err != nil {
		return nil, database.MapError(err)
	}

	return &c, nil
}

// Delete removes a comment by id. Deleting an id that matched no row is
// not-found, so a second delete of the same id fails.
func (s *Store) Delete(ctx context.Context, commentID int) error {
	query, args, err := sq.Delete("comments").
		Where(sq.Eq{"comment_id": commentID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build comment delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return database.MapError(err)
	}

	return database.RowsAffected(res, "comment")
}
