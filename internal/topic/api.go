package topic

import (
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

type Resource struct {
	Store *Store
	Log   *zap.SugaredLogger
}

func NewResource(store *Store, log *zap.SugaredLogger) *Resource {
	return &Resource{Store: store, Log: log}
}

// ListResponse is the envelope for the topic list.
type ListResponse struct {
	Topics []model.Topic `json:"topics"`
}

func (rd *ListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// List handles GET /api/topics.
func (rs *Resource) List(w http.ResponseWriter, r *http.Request) {
	topics, err := rs.Store.Select(r.Context())
	if err != nil {
		rs.Log.Errorw("list topics", "error", err)

		if err := render.Render(w, r, errresponse.From(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	if topics == nil {
		topics = []model.Topic{}
	}

	if err := render.Render(w, r, &ListResponse{Topics: topics}); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}
	}
}
