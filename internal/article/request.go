package article

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// VoteRequest is the payload for the vote increment. IncVotes is a pointer
// so that an absent field is distinguishable from a zero delta; a non-integer
// value already fails JSON decoding before Bind runs. Any extra keys in the
// payload are dropped by decoding into this struct.
type VoteRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required"`
}

func (v *VoteRequest) Bind(r *http.Request) error {
	return validate.Struct(v)
}
