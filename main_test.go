package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/newsdesk/internal/article"
	"github.com/SergeyParamoshkin/newsdesk/internal/comment"
	"github.com/SergeyParamoshkin/newsdesk/internal/topic"
	"github.com/SergeyParamoshkin/newsdesk/internal/user"
)

func newTestApp(t *testing.T) (*httptest.Server, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sugar := zap.NewNop().Sugar()
	a := &App{sugarLogger: sugar}

	r := a.routes(
		article.NewResource(article.NewStore(db), sugar),
		comment.NewResource(comment.NewStore(db), sugar),
		topic.NewResource(topic.NewStore(db), sugar),
		user.NewResource(user.NewStore(db), sugar),
	)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv, mock
}

func TestUnknownPath(t *testing.T) {
	// A route typo is path-not-found, not entity-not-found.
	for _, path := range []string{"/api/topic", "/not_a_route"} {
		t.Run(path, func(t *testing.T) {
			srv, mock := newTestApp(t)

			resp, err := http.Get(srv.URL + path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "Not found: Path doesnt exist", body["msg"])
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetEndpoints(t *testing.T) {
	srv, _ := newTestApp(t)

	resp, err := http.Get(srv.URL + "/api")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Endpoints map[string]json.RawMessage `json:"endpoints"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Contains(t, body.Endpoints, "GET /api")
	assert.Contains(t, body.Endpoints, "GET /api/articles")
	assert.Contains(t, body.Endpoints, "DELETE /api/comments/:comment_id")
}

func TestPing(t *testing.T) {
	srv, _ := newTestApp(t)

	resp, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
