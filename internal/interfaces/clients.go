// Package interfaces defines service contracts for Pulse
package interfaces

import (
	"context"

	"github.com/bobmcallan/pulse/internal/models"
)

// MarketDataClient is the live quote upstream (Alpha Vantage). Every method
// may fail; callers are expected to fall back to demo synthesis.
type MarketDataClient interface {
	// GetGlobalQuote retrieves a real-time stock quote.
	GetGlobalQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// GetExchangeRate retrieves the current exchange rate from one currency
	// (or crypto symbol) to another.
	GetExchangeRate(ctx context.Context, from, to string) (float64, error)

	// GetDailySeries retrieves daily bars, most recent first.
	GetDailySeries(ctx context.Context, symbol string) ([]models.HistoricalBar, error)

	// GetCompanyOverview retrieves company reference data.
	GetCompanyOverview(ctx context.Context, symbol string) (*models.CompanyInfo, error)
}

// TextGenClient generates short natural-language text from a prompt.
// Absence or failure is always non-fatal to callers.
type TextGenClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// NewsClient retrieves business headlines from a live news source.
type NewsClient interface {
	GetTopHeadlines(ctx context.Context, limit int) ([]models.NewsItem, error)
}
