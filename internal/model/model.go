package model

import "time"

// Topic is a category articles are filed under. The slug is the primary key
// and the value articles reference through their topic column.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// User data model. Users are read-only through this API; they are referenced
// by articles and comments through the author column.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Article data model. CommentCount is derived from the comments table at read
// time and never stored; Body is only populated (and serialized) by the
// single-article projections.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	ArticleImgURL string    `json:"article_img_url"`
	Votes         int       `json:"votes"`
	CommentCount  int       `json:"comment_count"`
}

// Comment data model. The field set here is exactly what the API echoes back
// on insert: comment_id, body, author, article_id, votes, created_at.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	ArticleID int       `json:"article_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
