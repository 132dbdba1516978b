package models

// Decision is a buy/hold/sell signal.
type Decision string

const (
	DecisionBuy  Decision = "BUY"
	DecisionHold Decision = "HOLD"
	DecisionSell Decision = "SELL"
)

// AnalysisMode selects the depth of a recommendation run. Unknown modes fall
// back to AnalysisDeep.
type AnalysisMode string

const (
	AnalysisQuick      AnalysisMode = "quick"
	AnalysisDeep       AnalysisMode = "deep"
	AnalysisPredictive AnalysisMode = "predictive"
	AnalysisAdvanced   AnalysisMode = "advanced"
)

// IndicatorSignal is the qualitative reading of a technical indicator.
type IndicatorSignal string

const (
	SignalBullish IndicatorSignal = "Bullish"
	SignalBearish IndicatorSignal = "Bearish"
	SignalNeutral IndicatorSignal = "Neutral"
)

// Recommendation is a generated trade recommendation for one symbol.
type Recommendation struct {
	Decision    Decision        `json:"decision"`
	Confidence  int             `json:"confidence"`
	TargetPrice float64         `json:"target_price"`
	Reasoning   string          `json:"reasoning"`
	RSI         int             `json:"rsi"`
	MACD        IndicatorSignal `json:"macd"`
	MovingAvg   IndicatorSignal `json:"moving_avg"`
}

// Sentiment is a synthesized news-sentiment reading for a symbol.
type Sentiment struct {
	Sentiment string  `json:"sentiment"` // positive, neutral, negative
	Score     float64 `json:"score"`
}
