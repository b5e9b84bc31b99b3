package translate

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// Client wraps the Google Cloud Translation v2 API.
type Client struct {
	service *translate.Service
}

// NewClient creates a Translation API client authenticated with an API key.
// Extra options are appended after the key, so tests can override the
// endpoint.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	all := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := translate.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}
	return &Client{service: service}, nil
}

// Translate converts text into the target ISO 639-1 language.
func (c *Client) Translate(ctx context.Context, text string, target string) (string, error) {
	resp, err := c.service.Translations.List([]string{text}, target).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to call translate API: %w", err)
	}

	if len(resp.Translations) == 0 {
		return "", fmt.Errorf("translate API returned no translations")
	}

	return resp.Translations[0].TranslatedText, nil
}
