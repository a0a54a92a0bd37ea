package article

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/newsdesk/internal/articleresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
)

// Resource bundles the article handlers with their store and logger.
type Resource struct {
	Store *Store
	Log   *zap.SugaredLogger
}

func NewResource(store *Store, log *zap.SugaredLogger) *Resource {
	return &Resource{Store: store, Log: log}
}

// List handles GET /api/articles with optional topic, sort_by and order
// query parameters.
func (rs *Resource) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	articles, err := rs.Store.Select(r.Context(), q.Get("topic"), q.Get("sort_by"), q.Get("order"))
	if err != nil {
		rs.Log.Infow("list articles", "error", err)

		if err := render.Render(w, r, errresponse.From(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	if err := render.Render(w, r, articleresponse.NewListResponse(articles)); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}
	}
}

// Get handles GET /api/articles/{articleID}. The article was already loaded
// by the Ctx middleware.
func (rs *Resource) Get(w http.ResponseWriter, r *http.Request) {
	article := FromContext(r.Context())

	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}
	}
}

// UpdateVotes handles PATCH /api/articles/{articleID}. It parses the id
// itself rather than going through Ctx: the update is a single statement and
// reports not-found on its own, so a preliminary fetch would be a wasted
// round trip.
func (rs *Resource) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "articleID"))
	if err != nil {
		if err := render.Render(w, r, errresponse.ErrInvalidRequest(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	data := &VoteRequest{}
	if err := render.Bind(r, data); err != nil {
		if err := render.Render(w, r, errresponse.ErrInvalidRequest(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	article, err := rs.Store.UpdateVotes(r.Context(), id, *data.IncVotes)
	if err != nil {
		rs.Log.Infow("update votes", "article_id", id, "error", err)

		if err := render.Render(w, r, errresponse.From(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	if err := render.Render(w, r, articleresponse.NewPatchedResponse(*article)); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}
	}
}
