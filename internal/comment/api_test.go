package comment_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/newsdesk/internal/article"
	"github.com/SergeyParamoshkin/newsdesk/internal/comment"
)

var articleColumns = []string{
	"article_id", "title", "topic", "author", "body",
	"created_at", "article_img_url", "votes", "comment_count",
}

var commentColumns = []string{"comment_id", "body", "author", "article_id", "votes", "created_at"}

func newTestServer(t *testing.T) (*httptest.Server, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := zap.NewNop().Sugar()
	ar := article.NewResource(article.NewStore(db), log)
	cr := comment.NewResource(comment.NewStore(db), log)

	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Route("/api", func(r chi.Router) {
		r.Route("/articles/{articleID}/comments", func(r chi.Router) {
			r.Use(ar.Ctx)
			r.Get("/", cr.ListByArticle)
			r.Post("/", cr.Create)
		})
		r.Delete("/comments/{commentID}", cr.Delete)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv, mock
}

// expectArticle registers the parent-article load performed by article.Ctx.
func expectArticle(mock sqlmock.Sqlmock, id int) {
	mock.ExpectQuery(`WHERE articles\.article_id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(articleColumns).
			AddRow(id, "Student SUES Mitch!", "mitch", "rogersop", "body",
				time.Now(), "http://img", 0, 0))
}

func postJSON(t *testing.T, url, payload string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	require.NoError(t, err)

	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]json.RawMessage {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

func TestListComments(t *testing.T) {
	t.Run("comments of an article, newest first", func(t *testing.T) {
		srv, mock := newTestServer(t)

		expectArticle(mock, 1)

		rows := sqlmock.NewRows(commentColumns)
		for i := 0; i < 11; i++ {
			rows.AddRow(i+1, "some comment", "icellusedkars", 1, 0,
				time.Now().Add(-time.Duration(i)*time.Hour))
		}

		mock.ExpectQuery(`FROM comments WHERE article_id = \$1 ORDER BY created_at DESC`).
			WithArgs(1).
			WillReturnRows(rows)

		resp, err := http.Get(srv.URL + "/api/articles/1/comments")
		require.NoError(t, err)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var comments []map[string]any
		require.NoError(t, json.Unmarshal(body["comments"], &comments))
		assert.Len(t, comments, 11)
	})

	t.Run("article without comments is an empty array", func(t *testing.T) {
		srv, mock := newTestServer(t)

		expectArticle(mock, 4)
		mock.ExpectQuery(`FROM comments WHERE article_id = \$1`).
			WithArgs(4).
			WillReturnRows(sqlmock.NewRows(commentColumns))

		resp, err := http.Get(srv.URL + "/api/articles/4/comments")
		require.NoError(t, err)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[]`, string(body["comments"]))
	})

	t.Run("absent article is a 404 before comments are queried", func(t *testing.T) {
		srv, mock := newTestServer(t)

		mock.ExpectQuery(`WHERE articles\.article_id = \$1`).
			WithArgs(9999).
			WillReturnRows(sqlmock.NewRows(articleColumns))

		resp, err := http.Get(srv.URL + "/api/articles/9999/comments")
		require.NoError(t, err)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `"Not Found"`, string(body["msg"]))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-numeric article id is a 400", func(t *testing.T) {
		srv, mock := newTestServer(t)

		resp, err := http.Get(srv.URL + "/api/articles/not_an_id/comments")
		require.NoError(t, err)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `"Bad Request"`, string(body["msg"]))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateComment(t *testing.T) {
	t.Run("echoes exactly the stored fields", func(t *testing.T) {
		srv, mock := newTestServer(t)

		expectArticle(mock, 4)
		mock.ExpectQuery(`INSERT INTO comments`).
			WithArgs("icellusedkars", "I like eggs", 4).
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(19, "I like eggs", "icellusedkars", 4, 0, time.Now()))

		resp := postJSON(t, srv.URL+"/api/articles/4/comments",
			`{"username": "icellusedkars", "body": "I like eggs", "test1": "not needed"}`)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var posted map[string]any
		require.NoError(t, json.Unmarshal(body["postedComment"], &posted))
		assert.Len(t, posted, 6)
		assert.Equal(t, "I like eggs", posted["body"])
		assert.Equal(t, "icellusedkars", posted["author"])
		assert.EqualValues(t, 4, posted["article_id"])
		assert.EqualValues(t, 0, posted["votes"])
	})

	badPayloads := []struct {
		name    string
		payload string
	}{
		{"missing body", `{"username": "icellusedkars"}`},
		{"missing username", `{"body": "I like eggs"}`},
		{"empty payload", `{}`},
		{"numeric username", `{"username": 2939049, "body": "hello"}`},
		{"numeric body", `{"username": "icellusedkars", "body": 584857494}`},
	}

	for _, tt := range badPayloads {
		t.Run(tt.name+" is a 400", func(t *testing.T) {
			srv, mock := newTestServer(t)

			expectArticle(mock, 4)

			resp := postJSON(t, srv.URL+"/api/articles/4/comments", tt.payload)
			body := decodeBody(t, resp)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, `"Bad Request"`, string(body["msg"]))
		})
	}

	t.Run("unknown author is a 404", func(t *testing.T) {
		srv, mock := newTestServer(t)

		expectArticle(mock, 4)
		mock.ExpectQuery(`INSERT INTO comments`).
			WithArgs("not_a_username", "Hey guys whatsup", 4).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "comments_author_fkey"})

		resp := postJSON(t, srv.URL+"/api/articles/4/comments",
			`{"username": "not_a_username", "body": "Hey guys whatsup"}`)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `"Not Found"`, string(body["msg"]))
	})

	t.Run("absent article is a 404", func(t *testing.T) {
		srv, mock := newTestServer(t)

		mock.ExpectQuery(`WHERE articles\.article_id = \$1`).
			WithArgs(9999).
			WillReturnRows(sqlmock.NewRows(articleColumns))

		resp := postJSON(t, srv.URL+"/api/articles/9999/comments",
			`{"username": "icellusedkars", "body": "I like eggs"}`)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `"Not Found"`, string(body["msg"]))
	})
}

func TestDeleteComment(t *testing.T) {
	newDeleteRequest := func(t *testing.T, url string) *http.Response {
		t.Helper()

		req, err := http.NewRequest(http.MethodDelete, url, nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)

		return resp
	}

	t.Run("responds no content on success", func(t *testing.T) {
		srv, mock := newTestServer(t)

		mock.ExpectExec(`DELETE FROM comments WHERE comment_id = \$1`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		resp := newDeleteRequest(t, srv.URL+"/api/comments/1")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("second delete of the same id is a 404", func(t *testing.T) {
		srv, mock := newTestServer(t)

		mock.ExpectExec(`DELETE FROM comments WHERE comment_id = \$1`).
			WithArgs(9999).
			WillReturnResult(sqlmock.NewResult(0, 0))

		resp := newDeleteRequest(t, srv.URL+"/api/comments/9999")
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `"Not Found"`, string(body["msg"]))
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		srv, mock := newTestServer(t)

		resp := newDeleteRequest(t, srv.URL+"/api/comments/ddhdh8dwh")
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `"Bad Request"`, string(body["msg"]))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
