package articleresponse

import (
	"net/http"
	"time"

	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

// ListItem is the projection used by the article list view. Body is omitted
// deliberately: it is large and not needed in lists.
type ListItem struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	ArticleImgURL string    `json:"article_img_url"`
	Votes         int       `json:"votes"`
	CommentCount  int       `json:"comment_count"`
}

// ListResponse is the envelope for the article list view.
type ListResponse struct {
	Articles []ListItem `json:"articles"`
}

func NewListResponse(articles []model.Article) *ListResponse {
	// Never nil: an empty result must serialize as [].
	items := make([]ListItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, ListItem{
			ArticleID:     a.ArticleID,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			CreatedAt:     a.CreatedAt,
			ArticleImgURL: a.ArticleImgURL,
			Votes:         a.Votes,
			CommentCount:  a.CommentCount,
		})
	}

	return &ListResponse{Articles: items}
}

func (rd *ListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// ArticleResponse is the envelope for the single-article view, which includes
// the body and the derived comment count.
type ArticleResponse struct {
	Article *model.Article `json:"article"`
}

func NewArticleResponse(article *model.Article) *ArticleResponse {
	return &ArticleResponse{Article: article}
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// PatchedArticle is the shape returned by the vote increment: the stored row
// as updated, without the derived comment count.
type PatchedArticle struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	ArticleImgURL string    `json:"article_img_url"`
	Votes         int       `json:"votes"`
}

// PatchedResponse is the envelope for the vote increment result.
type PatchedResponse struct {
	PatchedArticle PatchedArticle `json:"patchedArticle"`
}

func NewPatchedResponse(a model.Article) *PatchedResponse {
	return &PatchedResponse{PatchedArticle: PatchedArticle{
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		ArticleImgURL: a.ArticleImgURL,
		Votes:         a.Votes,
	}}
}

func (rd *PatchedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
