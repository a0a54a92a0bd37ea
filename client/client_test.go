//go:build !integration
// +build !integration

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticlesURL(t *testing.T) {
	c := Client{Addr: "http://localhost:3333"}

	assert.Equal(t, "http://localhost:3333/api/articles", c.ArticlesURL("", "", ""))
	assert.Equal(t,
		"http://localhost:3333/api/articles?order=asc&sort_by=votes&topic=mitch",
		c.ArticlesURL("mitch", "votes", "asc"))
}
