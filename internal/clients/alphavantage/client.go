// Package alphavantage provides a client for the Alpha Vantage API
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

const (
	DefaultBaseURL   = "https://www.alphavantage.co"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements the MarketDataClient interface
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Alpha Vantage client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Function   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Alpha Vantage API error: %s (status: %d, function: %s)", e.Message, e.StatusCode, e.Function)
}

// get performs a rate-limited GET against /query with the given function.
func (c *Client) get(ctx context.Context, function string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("function", function)
	params.Set("apikey", c.apiKey)

	reqURL := fmt.Sprintf("%s/query?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("function", function).Msg("Alpha Vantage API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Function:   function,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// globalQuoteResponse mirrors the GLOBAL_QUOTE payload. All values arrive as
// strings, the change percent with a trailing '%'.
type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		Volume        string `json:"06. volume"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
}

// GetGlobalQuote retrieves a real-time stock quote.
func (c *Client) GetGlobalQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var resp globalQuoteResponse
	if err := c.get(ctx, "GLOBAL_QUOTE", params, &resp); err != nil {
		return nil, err
	}

	q := resp.GlobalQuote
	if q.Price == "" {
		return nil, fmt.Errorf("empty quote payload for %s", symbol)
	}

	price, err := strconv.ParseFloat(q.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable price %q for %s: %w", q.Price, symbol, err)
	}
	change, err := strconv.ParseFloat(q.Change, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable change %q for %s: %w", q.Change, symbol, err)
	}
	changePct, err := strconv.ParseFloat(strings.TrimSuffix(q.ChangePercent, "%"), 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable change percent %q for %s: %w", q.ChangePercent, symbol, err)
	}
	volume, err := strconv.ParseInt(q.Volume, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable volume %q for %s: %w", q.Volume, symbol, err)
	}

	return &models.Quote{
		Symbol:        symbol,
		Price:         price,
		Change:        change,
		ChangePercent: changePct,
		Volume:        volume,
		Source:        "alphavantage",
	}, nil
}

type exchangeRateResponse struct {
	RealtimeCurrencyExchangeRate struct {
		ExchangeRate string `json:"5. Exchange Rate"`
	} `json:"Realtime Currency Exchange Rate"`
}

// GetExchangeRate retrieves the current exchange rate between two currencies.
func (c *Client) GetExchangeRate(ctx context.Context, from, to string) (float64, error) {
	params := url.Values{}
	params.Set("from_currency", from)
	params.Set("to_currency", to)

	var resp exchangeRateResponse
	if err := c.get(ctx, "CURRENCY_EXCHANGE_RATE", params, &resp); err != nil {
		return 0, err
	}

	raw := resp.RealtimeCurrencyExchangeRate.ExchangeRate
	if raw == "" {
		return 0, fmt.Errorf("empty exchange rate payload for %s/%s", from, to)
	}

	ratio, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable exchange rate %q for %s/%s: %w", raw, from, to, err)
	}

	return ratio, nil
}

type dailySeriesResponse struct {
	TimeSeries map[string]struct {
		Close  string `json:"4. close"`
		Volume string `json:"5. volume"`
	} `json:"Time Series (Daily)"`
}

// GetDailySeries retrieves daily bars, most recent first.
func (c *Client) GetDailySeries(ctx context.Context, symbol string) ([]models.HistoricalBar, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("outputsize", "compact")

	var resp dailySeriesResponse
	if err := c.get(ctx, "TIME_SERIES_DAILY", params, &resp); err != nil {
		return nil, err
	}

	if len(resp.TimeSeries) == 0 {
		return nil, fmt.Errorf("empty daily series payload for %s", symbol)
	}

	dates := make([]string, 0, len(resp.TimeSeries))
	for date := range resp.TimeSeries {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	bars := make([]models.HistoricalBar, 0, len(dates))
	for _, date := range dates {
		values := resp.TimeSeries[date]
		price, err := strconv.ParseFloat(values.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("unparseable close %q for %s on %s: %w", values.Close, symbol, date, err)
		}
		volume, err := strconv.ParseInt(values.Volume, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unparseable volume %q for %s on %s: %w", values.Volume, symbol, date, err)
		}
		bars = append(bars, models.HistoricalBar{
			Date:   date,
			Price:  price,
			Volume: volume,
		})
	}

	return bars, nil
}

type overviewResponse struct {
	Name        string `json:"Name"`
	Sector      string `json:"Sector"`
	Industry    string `json:"Industry"`
	Description string `json:"Description"`
}

// GetCompanyOverview retrieves company reference data.
func (c *Client) GetCompanyOverview(ctx context.Context, symbol string) (*models.CompanyInfo, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var resp overviewResponse
	if err := c.get(ctx, "OVERVIEW", params, &resp); err != nil {
		return nil, err
	}

	if resp.Name == "" {
		return nil, fmt.Errorf("empty overview payload for %s", symbol)
	}

	description := resp.Description
	if len(description) > 200 {
		description = description[:200] + "..."
	}

	return &models.CompanyInfo{
		Name:        resp.Name,
		Sector:      resp.Sector,
		Industry:    resp.Industry,
		Description: description,
	}, nil
}

// Ensure Client implements MarketDataClient
var _ interfaces.MarketDataClient = (*Client)(nil)
