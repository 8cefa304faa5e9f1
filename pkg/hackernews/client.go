// Package hackernews is a minimal client for the Hacker News Firebase API.
package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Item is the per-story payload returned by the item endpoint.
type Item struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Time    int64  `json:"time"`
	Score   int64  `json:"score"`
	Dead    bool   `json:"dead"`
	Deleted bool   `json:"deleted"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client against baseURL, normally
// https://hacker-news.firebaseio.com. Tests point it at a local server.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// TopStories returns the ids currently on the front page.
func (c *Client) TopStories(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := c.getJSON(ctx, c.baseURL+"/v0/topstories.json", &ids); err != nil {
		return nil, fmt.Errorf("hackernews topstories: %w", err)
	}
	return ids, nil
}

// Item fetches one story's detail. Unknown ids yield (nil, nil): the API
// responds with a JSON null body.
func (c *Client) Item(ctx context.Context, id int64) (*Item, error) {
	var item *Item
	url := fmt.Sprintf("%s/v0/item/%d.json", c.baseURL, id)
	if err := c.getJSON(ctx, url, &item); err != nil {
		return nil, fmt.Errorf("hackernews item %d: %w", id, err)
	}
	return item, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
