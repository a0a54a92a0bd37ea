package article

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

type ctxKey int8

const articleCtxKey ctxKey = iota

// FromContext returns the article loaded by Ctx. It is only called from
// handlers mounted below the middleware, so the article is always present.
func FromContext(ctx context.Context) *model.Article {
	return ctx.Value(articleCtxKey).(*model.Article)
}

// Ctx middleware loads the Article addressed by the articleID URL parameter
// into the request context. A non-numeric id stops here with a 400, an
// unknown id with a 404, so child handlers (single article, its comments)
// never run against an absent parent.
func (rs *Resource) Ctx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "articleID"))
		if err != nil {
			if err := render.Render(w, r, errresponse.ErrInvalidRequest(err)); err != nil {
				rs.Log.Errorw("render error response", "error", err)
			}

			return
		}

		article, err := rs.Store.GetByID(r.Context(), id)
		if err != nil {
			rs.Log.Infow("load article", "article_id", id, "error", err)

			if err := render.Render(w, r, errresponse.From(err)); err != nil {
				rs.Log.Errorw("render error response", "error", err)
			}

			return
		}

		ctx := context.WithValue(r.Context(), articleCtxKey, article)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
