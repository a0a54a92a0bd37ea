//go:build integration
// +build integration

package client

import (
	"net/http"
	"testing"
)

var c = Client{
	Addr:   "http://localhost:3333",
	Client: http.Client{},
}

func TestPing(t *testing.T) {
	if s, err := c.Ping(); err != nil || s != "pong" {
		t.Fail()
	}
}

func TestTopics(t *testing.T) {
	if _, err := c.Topics(); err != nil {
		t.Fatal(err)
	}
}
