package errresponse

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/newsdesk/internal/database"
)

// Canonical client-facing messages. Every failure maps to one of these,
// independent of which internal stage raised it.
const (
	MsgBadRequest   = "Bad Request"
	MsgNotFound     = "Not Found"
	MsgPathNotFound = "Not found: Path doesnt exist"
	MsgInternal     = "Internal Server Error"
)

// ErrResponse renderer type for handling all sorts of errors.
//
// The low-level error is kept for logging but never serialized; clients only
// see the canonical msg for the failure kind.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"msg"`             // user-level status message
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

// ErrInvalidRequest is used for payloads that fail decoding or binding.
func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     MsgBadRequest,
	}
}

// ErrRender is used when a response could not be rendered.
func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Error rendering response.",
		ErrorText:      err.Error(),
	}
}

// ErrNotFound is the canonical entity-not-found response.
var ErrNotFound render.Renderer = &ErrResponse{
	HTTPStatusCode: http.StatusNotFound,
	StatusText:     MsgNotFound,
}

// ErrPathNotFound is the router-level response for unknown paths, distinct
// from entity-not-found.
var ErrPathNotFound render.Renderer = &ErrResponse{
	HTTPStatusCode: http.StatusNotFound,
	StatusText:     MsgPathNotFound,
}

// From normalizes a tagged failure into its HTTP rendering. Anything not
// carrying one of the database sentinels is treated as an unhandled internal
// failure and surfaced without detail.
func From(err error) render.Renderer {
	switch {
	case errors.Is(err, database.ErrBadRequest):
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusBadRequest,
			StatusText:     MsgBadRequest,
		}
	case errors.Is(err, database.ErrNotFound):
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusNotFound,
			StatusText:     MsgNotFound,
		}
	default:
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusInternalServerError,
			StatusText:     MsgInternal,
		}
	}
}
