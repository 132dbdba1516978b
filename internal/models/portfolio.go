package models

// Position is a symbol's current share count and weighted-average cost basis.
// AvgPrice is only ever updated incrementally on each buy, never recomputed
// from scratch.
type Position struct {
	Shares   int     `json:"shares"`
	AvgPrice float64 `json:"avg_price"`
}

// PositionValuation is a position marked to a current price.
type PositionValuation struct {
	Symbol          string  `json:"symbol"`
	Shares          int     `json:"shares"`
	AvgPrice        float64 `json:"avg_price"`
	CurrentPrice    float64 `json:"current_price"`
	Value           float64 `json:"value"`
	GainLoss        float64 `json:"gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
}

// PortfolioValuation aggregates per-position valuations with portfolio totals.
type PortfolioValuation struct {
	Positions            []PositionValuation `json:"portfolio"`
	TotalValue           float64             `json:"total_value"`
	TotalGainLoss        float64             `json:"total_gain_loss"`
	TotalGainLossPercent float64             `json:"total_gain_loss_percent"`
}
