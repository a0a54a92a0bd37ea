package comment

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/newsdesk/internal/article"
	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

// Resource bundles the comment handlers with their store and logger.
type Resource struct {
	Store *Store
	Log   *zap.SugaredLogger
}

func NewResource(store *Store, log *zap.SugaredLogger) *Resource {
	return &Resource{Store: store, Log: log}
}

// ListResponse is the envelope for an article's comments.
type ListResponse struct {
	Comments []model.Comment `json:"comments"`
}

func NewListResponse(comments []model.Comment) *ListResponse {
	if comments == nil {
		comments = []model.Comment{}
	}

	return &ListResponse{Comments: comments}
}

func (rd *ListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// PostedResponse is the envelope for a freshly created comment.
type PostedResponse struct {
	PostedComment *model.Comment `json:"postedComment"`
}

func (rd *PostedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// ListByArticle handles GET /api/articles/{articleID}/comments. It runs below
// article.Ctx, so the parent article is already confirmed to exist.
func (rs *Resource) ListByArticle(w http.ResponseWriter, r *http.Request) {
	a := article.FromContext(r.Context())

	comments, err := rs.Store.SelectByArticle(r.Context(), a.ArticleID)
	if err != nil {
		rs.Log.Infow("list comments", "article_id", a.ArticleID, "error", err)

		if err := render.Render(w, r, errresponse.From(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	if err := render.Render(w, r, NewListResponse(comments)); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}
	}
}

// Create handles POST /api/articles/{articleID}/comments. Only the
// allow-listed payload fields are persisted and echoed back; anything extra
// the client sent is dropped by the bind.
func (rs *Resource) Create(w http.ResponseWriter, r *http.Request) {
	a := article.FromContext(r.Context())

	data := &CommentRequest{}
	if err := render.Bind(r, data); err != nil {
		if err := render.Render(w, r, errresponse.ErrInvalidRequest(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	comment, err := rs.Store.Insert(r.Context(), a.ArticleID, data.Username, data.Body)
	if err != nil {
		rs.Log.Infow("insert comment", "article_id", a.ArticleID, "author", data.Username, "error", err)

		if err := render.Render(w, r, errresponse.From(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	render.Status(r, http.StatusCreated)

	if err := render.Render(w, r, &PostedResponse{PostedComment: comment}); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}
	}
}

// Delete handles DELETE /api/comments/{commentID}. Success carries no body.
func (rs *Resource) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "commentID"))
	if err != nil {
		if err := render.Render(w, r, errresponse.ErrInvalidRequest(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	if err := rs.Store.Delete(r.Context(), id); err != nil {
		rs.Log.Infow("delete comment", "comment_id", id, "error", err)

		if err := render.Render(w, r, errresponse.From(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	render.NoContent(w, r)
}
