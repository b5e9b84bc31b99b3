package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrPageNotFound is returned when no article matches the requested topic.
var ErrPageNotFound = errors.New("wiki: page not found")

// Client fetches plain-text article extracts from the MediaWiki API.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a client for the given language edition (e.g. "pt").
func NewClient(language string) *Client {
	return &Client{
		apiURL:     fmt.Sprintf("https://%s.wikipedia.org/w/api.php", language),
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default MediaWiki API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// FetchExtract returns the full plain-text extract of the article titled
// topic. Redirects are followed server-side.
func (c *Client) FetchExtract(ctx context.Context, topic string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("format", "json")
	params.Set("titles", topic)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call mediawiki API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("mediawiki API error %d: %s", resp.StatusCode, string(raw))
	}

	var result queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode mediawiki response: %w", err)
	}

	for _, page := range result.Query.Pages {
		if page.Missing != nil {
			return "", ErrPageNotFound
		}
		if page.Extract != "" {
			return page.Extract, nil
		}
	}

	return "", ErrPageNotFound
}

type queryResponse struct {
	Query struct {
		Pages map[string]page `json:"pages"`
	} `json:"query"`
}

type page struct {
	Title   string          `json:"title"`
	Extract string          `json:"extract"`
	Missing json.RawMessage `json:"missing,omitempty"`
}
