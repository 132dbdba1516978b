package models

// SessionState is the per-session mutable state: watchlist, portfolio, and
// price alerts. Each field defaults independently when absent; defaulting
// happens once at load rather than per access.
type SessionState struct {
	Watchlist   []string            `json:"watchlist"`
	Portfolio   map[string]Position `json:"portfolio"`
	PriceAlerts []Alert             `json:"price_alerts"`
	Theme       string              `json:"theme"`
}

// DefaultWatchlist is the seed watchlist for new sessions.
func DefaultWatchlist() []string {
	return []string{"AAPL", "MSFT", "NVDA", "TSLA", "GOOGL", "AMZN", "META", "JPM", "JNJ", "V"}
}

// DefaultPortfolio is the seed portfolio for new sessions.
func DefaultPortfolio() map[string]Position {
	return map[string]Position{
		"AAPL": {Shares: 10, AvgPrice: 150.25},
		"MSFT": {Shares: 5, AvgPrice: 280.50},
		"NVDA": {Shares: 8, AvgPrice: 420.75},
		"V":    {Shares: 15, AvgPrice: 210.30},
	}
}

// ApplyDefaults fills any absent session fields with their seed values.
func (s *SessionState) ApplyDefaults() {
	if s.Watchlist == nil {
		s.Watchlist = DefaultWatchlist()
	}
	if s.Portfolio == nil {
		s.Portfolio = DefaultPortfolio()
	}
	if s.PriceAlerts == nil {
		s.PriceAlerts = []Alert{}
	}
	if s.Theme == "" {
		s.Theme = "dark"
	}
}
