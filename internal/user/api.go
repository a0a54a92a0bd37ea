package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
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

// ListResponse is the envelope for the user list.
type ListResponse struct {
	Users []model.User `json:"users"`
}

func (rd *ListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// UserResponse is the envelope for a single user.
type UserResponse struct {
	User *model.User `json:"user"`
}

func (rd *UserResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// List handles GET /api/users.
func (rs *Resource) List(w http.ResponseWriter, r *http.Request) {
	users, err := rs.Store.Select(r.Context())
	if err != nil {
		rs.Log.Errorw("list users", "error", err)

		if err := render.Render(w, r, errresponse.From(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	if users == nil {
		users = []model.User{}
	}

	if err := render.Render(w, r, &ListResponse{Users: users}); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}
	}
}

// Get handles GET /api/users/{username}.
func (rs *Resource) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := rs.Store.GetByUsername(r.Context(), username)
	if err != nil {
		rs.Log.Infow("get user", "username", username, "error", err)

		if err := render.Render(w, r, errresponse.From(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}

		return
	}

	if err := render.Render(w, r, &UserResponse{User: user}); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.Log.Errorw("render error response", "error", err)
		}
	}
}
