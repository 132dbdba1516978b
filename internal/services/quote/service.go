// Package quote provides the quote provider: live upstream data with a total
// fallback to synthesized demo data
package quote

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

// Service implements QuoteService. A nil MarketDataClient keeps every path in
// demo mode; with a client, any upstream failure falls back to synthesis, so
// no method ever surfaces an upstream error.
type Service struct {
	client interfaces.MarketDataClient
	logger *common.Logger
	rng    Rand
	now    func() time.Time
}

// ServiceOption configures the service
type ServiceOption func(*Service)

// WithRand sets the randomness source (tests inject a seeded one).
func WithRand(rng Rand) ServiceOption {
	return func(s *Service) {
		s.rng = rng
	}
}

// WithClock sets the clock used for historical and earnings dates.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new quote service. client may be nil for demo mode.
func NewService(client interfaces.MarketDataClient, logger *common.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		client: client,
		logger: logger,
		rng:    globalRand{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetQuote returns a stock quote. Live data when a client is configured,
// synthesized otherwise or on any upstream failure.
func (s *Service) GetQuote(ctx context.Context, symbol string) *models.Quote {
	if s.client != nil {
		quote, err := s.client.GetGlobalQuote(ctx, symbol)
		if err == nil {
			return quote
		}
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Live quote failed, synthesizing")
	}
	return s.synthesizeQuote(symbol)
}

// GetCryptoQuote returns a crypto quote with the same two-tier contract.
func (s *Service) GetCryptoQuote(ctx context.Context, symbol string) *models.Quote {
	if s.client != nil {
		rate, err := s.client.GetExchangeRate(ctx, symbol, "USD")
		if err == nil && rate > 0 {
			// The FX endpoint returns a spot rate only. Change figures are a
			// documented placeholder: 1% of price.
			return &models.Quote{
				Symbol:        symbol,
				Price:         round2(rate),
				Change:        round2(rate * 0.01),
				ChangePercent: 1.0,
				Volume:        int64(s.randInt(1_000_000, 1_000_000_000)),
				MarketCap:     rate * float64(s.randInt(1_000_000, 1_000_000_000)),
				Source:        "alphavantage",
			}
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Live crypto quote failed, synthesizing")
		}
	}
	return s.synthesizeCryptoQuote(symbol)
}

// GetHistorical returns exactly days bars in chronological order. Live series
// are used when available and long enough; otherwise a random walk anchored
// at the symbol's base price.
func (s *Service) GetHistorical(ctx context.Context, symbol string, days int) []models.HistoricalBar {
	if days <= 0 {
		days = 30
	}

	if s.client != nil {
		bars, err := s.client.GetDailySeries(ctx, symbol)
		if err == nil && len(bars) >= days {
			// Upstream order is most recent first; serve chronologically.
			recent := bars[:days]
			out := make([]models.HistoricalBar, days)
			for i := range recent {
				out[days-1-i] = recent[i]
			}
			return out
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Live historical series failed, synthesizing")
		} else {
			s.logger.Warn().Str("symbol", symbol).Int("bars", len(bars)).Int("days", days).Msg("Live series too short, synthesizing")
		}
	}

	return s.synthesizeHistorical(symbol, days)
}

// GetMarketOverview returns synthesized indices plus quotes for the popular
// stock and crypto symbols.
func (s *Service) GetMarketOverview(ctx context.Context) *models.MarketOverview {
	indices := make(map[string]models.IndexQuote, len(indexBases))
	for symbol, base := range indexBases {
		price := base.price + (s.rng.Float64()-0.5)*base.spread
		change := (s.rng.Float64() - 0.5) * 2
		indices[symbol] = models.IndexQuote{
			Name:          base.name,
			Price:         price,
			Change:        change,
			ChangePercent: change / price * 100,
		}
	}

	stocks := make([]*models.Quote, 0, len(popularStocks))
	for _, symbol := range popularStocks {
		stocks = append(stocks, s.GetQuote(ctx, symbol))
	}

	crypto := make([]*models.Quote, 0, len(popularCrypto))
	for _, symbol := range popularCrypto {
		crypto = append(crypto, s.GetCryptoQuote(ctx, symbol))
	}

	return &models.MarketOverview{
		Indices: indices,
		Stocks:  stocks,
		Crypto:  crypto,
	}
}

// GetCompanyInfo returns company reference data, canned when no live overview
// is available.
func (s *Service) GetCompanyInfo(ctx context.Context, symbol string) *models.CompanyInfo {
	if s.client != nil {
		info, err := s.client.GetCompanyOverview(ctx, symbol)
		if err == nil {
			return info
		}
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Live company overview failed, using canned profile")
	}

	if info, ok := companyProfiles[symbol]; ok {
		profile := info
		return &profile
	}
	return &models.CompanyInfo{
		Name:        fmt.Sprintf("%s Corporation", symbol),
		Sector:      "Various",
		Industry:    "Various",
		Description: "Company information not available.",
	}
}

// GetEarningsCalendar returns a synthesized upcoming earnings calendar.
func (s *Service) GetEarningsCalendar(_ context.Context) []models.EarningsEvent {
	events := make([]models.EarningsEvent, 0, len(popularStocks))
	for _, symbol := range popularStocks {
		date := s.now().AddDate(0, 0, s.randInt(1, 30))
		events = append(events, models.EarningsEvent{
			Symbol:           symbol,
			Date:             date.Format("2006-01-02"),
			EstimatedEPS:     round2(s.uniform(0.5, 5.0)),
			EstimatedRevenue: round2(s.uniform(1_000_000_000, 100_000_000_000)),
		})
	}
	return events
}

// synthesizeQuote builds a demo stock quote around the symbol's base price.
func (s *Service) synthesizeQuote(symbol string) *models.Quote {
	base := basePrice(stockBasePrices, symbol)

	price := base + (s.rng.Float64()-0.5)*20
	change := (s.rng.Float64() - 0.5) * 10

	return &models.Quote{
		Symbol:        symbol,
		Price:         round2(price),
		Change:        round2(change),
		ChangePercent: round2(change / price * 100),
		Volume:        int64(s.randInt(1_000_000, 10_000_000)),
		MarketCap:     price * float64(s.randInt(100_000_000, 10_000_000_000)),
		PERatio:       round2(s.uniform(10, 40)),
		DividendYield: round2(s.uniform(0, 4)),
		High52Week:    round2(price * s.uniform(1.1, 1.5)),
		Low52Week:     round2(price * s.uniform(0.5, 0.9)),
		Source:        "demo",
	}
}

// synthesizeCryptoQuote builds a demo crypto quote with a wider volume range.
func (s *Service) synthesizeCryptoQuote(symbol string) *models.Quote {
	base := basePrice(cryptoBasePrices, symbol)

	price := base + (s.rng.Float64()-0.5)*20
	change := (s.rng.Float64() - 0.5) * 10

	return &models.Quote{
		Symbol:        symbol,
		Price:         round2(price),
		Change:        round2(change),
		ChangePercent: round2(change / price * 100),
		Volume:        int64(s.randInt(1_000_000, 1_000_000_000)),
		MarketCap:     price * float64(s.randInt(1_000_000, 1_000_000_000)),
		Source:        "demo",
	}
}

// synthesizeHistorical walks a random daily series backward from today,
// clamped so the price never drops below 70% of the base.
func (s *Service) synthesizeHistorical(symbol string, days int) []models.HistoricalBar {
	base := basePrice(historicalBasePrices, symbol)
	floor := base * 0.7

	bars := make([]models.HistoricalBar, 0, days)
	price := base
	today := s.now()

	for i := days; i >= 1; i-- {
		date := today.AddDate(0, 0, -i)
		price += (s.rng.Float64() - 0.5) * 10
		if price < floor {
			price = floor
		}
		bars = append(bars, models.HistoricalBar{
			Date:   date.Format("2006-01-02"),
			Price:  round2(price),
			Volume: int64(s.randInt(1_000_000, 10_000_000)),
		})
	}

	return bars
}

// uniform draws from [lo, hi).
func (s *Service) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// randInt draws an integer from [lo, hi] inclusive.
func (s *Service) randInt(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func basePrice(table map[string]float64, symbol string) float64 {
	if base, ok := table[symbol]; ok {
		return base
	}
	return 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ensure Service implements QuoteService
var _ interfaces.QuoteService = (*Service)(nil)
