// Package models defines data structures for Pulse
package models

import "time"

// Quote holds a price snapshot for a stock or crypto symbol.
// Quotes are transient: recomputed per request, never persisted.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	MarketCap     float64 `json:"market_cap,omitempty"`
	PERatio       float64 `json:"pe_ratio,omitempty"`
	DividendYield float64 `json:"dividend_yield,omitempty"`
	High52Week    float64 `json:"fifty_two_week_high,omitempty"`
	Low52Week     float64 `json:"fifty_two_week_low,omitempty"`
	Source        string  `json:"source,omitempty"` // "alphavantage" or "demo"
}

// HistoricalBar represents a single day in a price series.
type HistoricalBar struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Price  float64 `json:"price"`
	Volume int64   `json:"volume"`
}

// IndexQuote holds a synthesized market-index snapshot.
type IndexQuote struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// MarketOverview aggregates indices, popular stocks, and popular cryptos.
type MarketOverview struct {
	Indices map[string]IndexQuote `json:"indices"`
	Stocks  []*Quote              `json:"stocks"`
	Crypto  []*Quote              `json:"crypto"`
}

// CompanyInfo holds basic company reference data.
type CompanyInfo struct {
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}

// EarningsEvent is one row of the earnings calendar.
type EarningsEvent struct {
	Symbol           string  `json:"symbol"`
	Date             string  `json:"date"` // YYYY-MM-DD
	EstimatedEPS     float64 `json:"estimated_eps"`
	EstimatedRevenue float64 `json:"estimated_revenue"`
}

// NewsItem represents a news article or synthesized headline.
type NewsItem struct {
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	Time        time.Time `json:"time"`
	URL         string    `json:"url"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
}
