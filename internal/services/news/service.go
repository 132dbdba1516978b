// Package news serves business headlines with a synthesized fallback
package news

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

// Rand is the randomness surface used by headline synthesis.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

const headlineCount = 10

// Service implements NewsService. A nil NewsClient always synthesizes.
type Service struct {
	client interfaces.NewsClient
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

// WithClock sets the time source (tests inject a fixed one).
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new news service. client may be nil.
func NewService(client interfaces.NewsClient, logger *common.Logger, opts ...ServiceOption) *Service {
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

// GetHeadlines returns business headlines, falling back to synthesized demo
// articles when no client is configured or the fetch fails.
func (s *Service) GetHeadlines(ctx context.Context) []models.NewsItem {
	if s.client != nil {
		items, err := s.client.GetTopHeadlines(ctx, headlineCount)
		if err == nil && len(items) > 0 {
			return items
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("Headline fetch failed, synthesizing")
		}
	}
	return s.synthesizeHeadlines()
}

var headlineSymbols = []string{"AAPL", "MSFT", "TSLA", "NVDA", "GOOGL", "AMZN", "META", "NFLX", "AMD", "JPM"}

var headlineTemplates = map[string][]string{
	"positive": {
		"%s Surges on Strong Quarterly Earnings Report",
		"Analysts Upgrade %s Following Product Launch Success",
		"%s Announces Record Revenue Growth",
	},
	"neutral": {
		"%s Reports Mixed Results Amid Market Uncertainty",
		"%s Shares Steady as Investors Await Guidance",
		"Market Watch: %s Trades Sideways in Quiet Session",
	},
	"negative": {
		"%s Faces Headwinds as Competition Intensifies",
		"%s Shares Dip on Regulatory Concerns",
		"Investors Cautious on %s After Downbeat Forecast",
	},
}

var headlineSources = []string{"Bloomberg", "Reuters", "CNBC", "Wall Street Journal"}

// drawSentiment mirrors the recommendation sentiment weights: positive 60%,
// neutral 30%, negative 10%.
func (s *Service) drawSentiment() string {
	roll := s.rng.Float64()
	switch {
	case roll < 0.6:
		return "positive"
	case roll < 0.9:
		return "neutral"
	default:
		return "negative"
	}
}

func (s *Service) synthesizeHeadlines() []models.NewsItem {
	now := s.now().UTC()
	items := make([]models.NewsItem, 0, headlineCount)

	for i := 0; i < headlineCount; i++ {
		symbol := headlineSymbols[i%len(headlineSymbols)]
		templates := headlineTemplates[s.drawSentiment()]
		title := fmt.Sprintf(templates[s.rng.IntN(len(templates))], symbol)
		hoursAgo := 1 + s.rng.IntN(12)

		items = append(items, models.NewsItem{
			Title:       title,
			Source:      headlineSources[s.rng.IntN(len(headlineSources))],
			Time:        now.Add(-time.Duration(hoursAgo) * time.Hour),
			URL:         "#",
			Image:       "",
			Description: fmt.Sprintf("Latest market developments surrounding %s and the broader sector.", symbol),
		})
	}

	return items
}

// Ensure Service implements NewsService
var _ interfaces.NewsService = (*Service)(nil)
