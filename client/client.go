// Package client is a small consumer of the newsdesk API, used by the
// integration tests and handy for smoke-testing a running instance.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type Client struct {
	http.Client
	Addr string
}

// Topic mirrors the wire shape of a topic.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (c *Client) Ping() (string, error) {
	req, err := http.NewRequest("GET", c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), err
}

// Topics fetches all topics.
func (c *Client) Topics() ([]Topic, error) {
	resp, err := c.Get(c.Addr + "/api/topics")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var envelope struct {
		Topics []Topic `json:"topics"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	return envelope.Topics, nil
}

// ArticlesURL builds the list-articles URL for the given optional queries.
func (c *Client) ArticlesURL(topic, sortBy, order string) string {
	q := url.Values{}
	if topic != "" {
		q.Set("topic", topic)
	}

	if sortBy != "" {
		q.Set("sort_by", sortBy)
	}

	if order != "" {
		q.Set("order", order)
	}

	u := c.Addr + "/api/articles"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	return u
}
