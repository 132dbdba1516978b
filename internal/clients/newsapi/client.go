// Package newsapi provides a client for the NewsAPI top-headlines endpoint
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

const (
	DefaultBaseURL = "https://newsapi.org/v2"
	DefaultTimeout = 10 * time.Second
)

// Client implements the NewsClient interface
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new NewsAPI client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type headlinesResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title  string `json:"title"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		Description string `json:"description"`
	} `json:"articles"`
}

// GetTopHeadlines retrieves US business headlines, at most limit items.
func (c *Client) GetTopHeadlines(ctx context.Context, limit int) ([]models.NewsItem, error) {
	params := url.Values{}
	params.Set("category", "business")
	params.Set("country", "us")
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("apiKey", c.apiKey)

	reqURL := fmt.Sprintf("%s/top-headlines?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Int("limit", limit).Msg("NewsAPI top-headlines request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("NewsAPI error (status %d): %s", resp.StatusCode, string(body))
	}

	var payload headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(payload.Articles) == 0 {
		return nil, fmt.Errorf("no articles returned")
	}

	items := make([]models.NewsItem, 0, len(payload.Articles))
	for _, article := range payload.Articles {
		if len(items) >= limit {
			break
		}
		publishedAt, _ := time.Parse(time.RFC3339, article.PublishedAt)
		title := article.Title
		if title == "" {
			title = "No title"
		}
		source := article.Source.Name
		if source == "" {
			source = "Unknown"
		}
		description := article.Description
		if description == "" {
			description = "No description available"
		}
		itemURL := article.URL
		if itemURL == "" {
			itemURL = "#"
		}
		items = append(items, models.NewsItem{
			Title:       title,
			Source:      source,
			Time:        publishedAt,
			URL:         itemURL,
			Image:       article.URLToImage,
			Description: description,
		})
	}

	return items, nil
}

// Ensure Client implements NewsClient
var _ interfaces.NewsClient = (*Client)(nil)
