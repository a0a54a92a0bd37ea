package comment

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CommentRequest is the payload for posting a comment. Both fields must be
// present, non-empty strings; a numeric value where a string is expected
// already fails JSON decoding before Bind runs. Extra keys are dropped.
type CommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body"     validate:"required"`
}

func (c *CommentRequest) Bind(r *http.Request) error {
	return validate.Struct(c)
}
