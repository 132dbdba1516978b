// Package recommend generates trade recommendations, sentiment readings, and
// assistant chat responses
package recommend

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

// Rand is the randomness surface used by recommendation synthesis.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Service implements RecommendService. A nil TextGenClient skips AI-refined
// reasoning and chat; canned text is served instead.
type Service struct {
	textgen interfaces.TextGenClient
	logger  *common.Logger
	rng     Rand
}

// ServiceOption configures the service
type ServiceOption func(*Service)

// WithRand sets the randomness source (tests inject a seeded one).
func WithRand(rng Rand) ServiceOption {
	return func(s *Service) {
		s.rng = rng
	}
}

// NewService creates a new recommendation service. textgen may be nil.
func NewService(textgen interfaces.TextGenClient, logger *common.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		textgen: textgen,
		logger:  logger,
		rng:     globalRand{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// confidenceRange returns the inclusive confidence bounds for a mode.
// Unknown modes use the deep range.
func confidenceRange(mode models.AnalysisMode) (int, int) {
	switch mode {
	case models.AnalysisQuick:
		return 60, 80
	case models.AnalysisPredictive:
		return 70, 85
	case models.AnalysisAdvanced:
		return 80, 95
	default:
		return 75, 90
	}
}

// targetRange returns the target-price scaling bounds for a decision.
func targetRange(decision models.Decision) (float64, float64) {
	switch decision {
	case models.DecisionBuy:
		return 1.05, 1.25
	case models.DecisionSell:
		return 0.75, 0.95
	default:
		return 0.98, 1.05
	}
}

// Recommend generates a recommendation for the quoted symbol. The decision is
// a weighted draw (BUY 60%, HOLD 30%, SELL 10%); the gemini refinement, when
// configured, replaces the canned reasoning and fails silently.
func (s *Service) Recommend(ctx context.Context, q *models.Quote, mode models.AnalysisMode) *models.Recommendation {
	decision := s.drawDecision()

	lo, hi := confidenceRange(mode)
	confidence := s.randInt(lo, hi)

	fLo, fHi := targetRange(decision)
	target := round2(q.Price * s.uniform(fLo, fHi))

	reasoning := cannedReasoning(q.Symbol, decision)
	switch mode {
	case models.AnalysisAdvanced:
		reasoning += " Multi-factor analysis confirms this recommendation with high probability."
	case models.AnalysisPredictive:
		reasoning += " Predictive models indicate this trend will continue in the near term."
	}

	rec := &models.Recommendation{
		Decision:    decision,
		Confidence:  confidence,
		TargetPrice: target,
		Reasoning:   reasoning,
		RSI:         s.randInt(30, 70),
		MACD:        s.drawSignal(),
		MovingAvg:   s.drawSignal(),
	}

	if s.textgen != nil {
		prompt := fmt.Sprintf(
			"Provide a detailed analysis of %s stock. Current price: $%.2f. "+
				"Recommendation: %s with %d%% confidence. Target price: $%.2f. "+
				"Provide a brief reasoning (2-3 sentences) for this recommendation.",
			q.Symbol, q.Price, rec.Decision, rec.Confidence, rec.TargetPrice)

		if text, err := s.textgen.GenerateContent(ctx, prompt); err == nil && strings.TrimSpace(text) != "" {
			rec.Reasoning = strings.TrimSpace(text)
		} else if err != nil {
			s.logger.Warn().Err(err).Str("symbol", q.Symbol).Msg("AI reasoning failed, keeping canned text")
		}
	}

	return rec
}

// AnalyzeSentiment returns a synthesized news-sentiment reading: positive
// 60%, neutral 30%, negative 10%, with a score range per sentiment.
func (s *Service) AnalyzeSentiment(_ context.Context, _ string) *models.Sentiment {
	roll := s.rng.Float64()

	var sentiment string
	var lo, hi float64
	switch {
	case roll < 0.6:
		sentiment, lo, hi = "positive", 0.5, 0.9
	case roll < 0.9:
		sentiment, lo, hi = "neutral", 0.3, 0.6
	default:
		sentiment, lo, hi = "negative", 0.1, 0.4
	}

	return &models.Sentiment{
		Sentiment: sentiment,
		Score:     round2(s.uniform(lo, hi)),
	}
}

const chatSystemPrompt = "You are a financial AI assistant specializing in stock market analysis, " +
	"portfolio management, and investment strategies. Provide concise, helpful advice."

// cannedResponses is matched in order by substring against the lowercased
// message; the last entry is the default.
var cannedResponses = []struct {
	key      string
	response string
}{
	{"hello", "Hello! I'm your AI trading assistant. How can I help you today?"},
	{"how are you", "I'm functioning optimally, ready to analyze the markets for you!"},
	{"what stocks should i buy", "Based on current market conditions, I recommend looking into technology stocks like AAPL and MSFT, which show strong fundamentals."},
	{"is now a good time to invest", "Market timing is challenging. Consider dollar-cost averaging and focusing on long-term trends rather than short-term fluctuations."},
	{"what is your analysis of the market", "Current market indicators suggest moderate volatility with growth potential in technology and healthcare sectors."},
	{"how should i diversify my portfolio", "A well-diversified portfolio typically includes stocks from different sectors, bonds, and possibly some commodities or real estate."},
}

const chatDefaultResponse = "I'm designed to provide stock market analysis and investment insights. " +
	"Could you please ask a more specific question about trading or investments?"

// Chat answers a user message via the text-generation client, degrading to
// keyword-matched canned responses when the client is absent or fails.
func (s *Service) Chat(ctx context.Context, message string) string {
	if s.textgen != nil {
		prompt := chatSystemPrompt + "\n\n" + message
		if text, err := s.textgen.GenerateContent(ctx, prompt); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("AI chat failed, using canned response")
			return "I'm currently experiencing technical difficulties. Please try again later."
		}
	}

	lower := strings.ToLower(message)
	for _, canned := range cannedResponses {
		if strings.Contains(lower, canned.key) {
			return canned.response
		}
	}
	return chatDefaultResponse
}

func cannedReasoning(symbol string, decision models.Decision) string {
	switch decision {
	case models.DecisionBuy:
		return fmt.Sprintf("%s shows strong fundamentals with growth potential. Technical indicators suggest upward momentum.", symbol)
	case models.DecisionSell:
		return fmt.Sprintf("%s appears overvalued with weakening technical indicators. Consider taking profits.", symbol)
	default:
		return fmt.Sprintf("%s is fairly valued at current levels. Maintain position while monitoring market conditions.", symbol)
	}
}

// drawDecision draws BUY/HOLD/SELL with 0.6/0.3/0.1 weights.
func (s *Service) drawDecision() models.Decision {
	roll := s.rng.Float64()
	switch {
	case roll < 0.6:
		return models.DecisionBuy
	case roll < 0.9:
		return models.DecisionHold
	default:
		return models.DecisionSell
	}
}

// drawSignal draws uniformly from {Bullish, Bearish, Neutral}.
func (s *Service) drawSignal() models.IndicatorSignal {
	switch s.rng.IntN(3) {
	case 0:
		return models.SignalBullish
	case 1:
		return models.SignalBearish
	default:
		return models.SignalNeutral
	}
}

func (s *Service) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Service) randInt(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ensure Service implements RecommendService
var _ interfaces.RecommendService = (*Service)(nil)
