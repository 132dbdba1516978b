package interfaces

import (
	"context"

	"github.com/bobmcallan/pulse/internal/models"
)

// PriceFunc resolves a symbol to its current price. Implementations are
// total: they synthesize a price when no live source is available.
type PriceFunc func(ctx context.Context, symbol string) float64

// QuoteService provides quotes, historical series, and market reference data.
// All methods are total: any upstream failure degrades to demo synthesis, so
// callers never observe an error.
type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) *models.Quote
	GetCryptoQuote(ctx context.Context, symbol string) *models.Quote
	GetHistorical(ctx context.Context, symbol string, days int) []models.HistoricalBar
	GetMarketOverview(ctx context.Context) *models.MarketOverview
	GetCompanyInfo(ctx context.Context, symbol string) *models.CompanyInfo
	GetEarningsCalendar(ctx context.Context) []models.EarningsEvent
}

// RecommendService generates trade recommendations, sentiment readings, and
// chat responses. All methods are total.
type RecommendService interface {
	Recommend(ctx context.Context, quote *models.Quote, mode models.AnalysisMode) *models.Recommendation
	AnalyzeSentiment(ctx context.Context, symbol string) *models.Sentiment
	Chat(ctx context.Context, message string) string
}

// PortfolioService maintains a symbol→position map with weighted-average-cost
// accounting. Operations act on state materialized from the session store.
type PortfolioService interface {
	// Add creates or merges a position. Returns models.ErrInvalidInput when
	// symbol is empty, shares <= 0, or avgPrice <= 0.
	Add(positions map[string]models.Position, symbol string, shares int, avgPrice float64) error

	// Remove deletes a position if present; absent symbols are a no-op.
	Remove(positions map[string]models.Position, symbol string)

	// Valuation marks every position to the price returned by priceFn.
	Valuation(ctx context.Context, positions map[string]models.Position, priceFn PriceFunc) *models.PortfolioValuation
}

// AlertService maintains price alert records.
type AlertService interface {
	// Create appends a new untriggered alert. Returns models.ErrInvalidInput
	// when symbol is empty, target <= 0, or alertType is unknown.
	Create(alerts []models.Alert, symbol string, target float64, alertType models.AlertType) ([]models.Alert, *models.Alert, error)

	// Sweep evaluates all untriggered alerts in creation order, mutating
	// triggered records in place, and returns the newly triggered alerts.
	Sweep(ctx context.Context, alerts []models.Alert, priceFn PriceFunc) []models.Alert
}

// WatchlistService maintains a bounded ordered set of symbols.
type WatchlistService interface {
	// Add appends a symbol if absent. Duplicates and adds past the cap
	// are silent no-ops; an empty symbol returns models.ErrInvalidInput.
	Add(watchlist []string, symbol string) ([]string, error)

	// Remove deletes a symbol, preserving order; absent symbols are a no-op.
	Remove(watchlist []string, symbol string) []string
}

// NewsService returns business headlines, synthesized when no live source
// is configured or reachable.
type NewsService interface {
	GetHeadlines(ctx context.Context) []models.NewsItem
}
