package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smc-analyzer/internal/model"
	platform "smc-analyzer/internal/platform/http"
)

// Client fetches recent headlines for an instrument. Headlines only feed the
// GPT prompt; a failed fetch degrades to an analysis without news context.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *platform.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new news client
type ClientOptions struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
}

// NewClient creates a new newsdata.io client
func NewClient(options ClientOptions) *Client {
	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = "https://newsdata.io/api/1"
	}

	return &Client{
		apiKey:  options.APIKey,
		baseURL: baseURL,
		httpClient: platform.NewClient(platform.ClientOptions{
			Timeout: options.RequestTimeout,
		}),
		logger: log.With().Str("component", "news_client").Logger(),
	}
}

// GetHeadlines returns up to limit recent headlines matching query.
func (c *Client) GetHeadlines(ctx context.Context, query string, limit int) ([]model.Headline, error) {
	endpoint := fmt.Sprintf(
		"%s/latest?apikey=%s&category=business&q=%s",
		c.baseURL,
		c.apiKey,
		url.QueryEscape(query),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.DoRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var data model.NewsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	if data.Status != "success" {
		c.logger.Warn().Str("status", data.Status).Msg("News API returned non-success status")
		return nil, fmt.Errorf("news API status: %s", data.Status)
	}

	headlines := data.Results
	if limit > 0 && len(headlines) > limit {
		headlines = headlines[:limit]
	}

	c.logger.Debug().Int("count", len(headlines)).Str("query", query).Msg("Fetched headlines")
	return headlines, nil
}
