// Package app wires configuration, clients, storage, and services together
package app

import (
	"context"
	"time"

	"github.com/bobmcallan/pulse/internal/clients/alphavantage"
	"github.com/bobmcallan/pulse/internal/clients/gemini"
	"github.com/bobmcallan/pulse/internal/clients/newsapi"
	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/services/alert"
	"github.com/bobmcallan/pulse/internal/services/news"
	"github.com/bobmcallan/pulse/internal/services/portfolio"
	"github.com/bobmcallan/pulse/internal/services/quote"
	"github.com/bobmcallan/pulse/internal/services/recommend"
	"github.com/bobmcallan/pulse/internal/services/watchlist"
	sessionstore "github.com/bobmcallan/pulse/internal/storage/session"
)

// App holds all initialized services, clients, and storage. It is the shared
// core used by cmd/pulse-server and by handler tests.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Sessions         interfaces.SessionStore
	QuoteService     interfaces.QuoteService
	RecommendService interfaces.RecommendService
	NewsService      interfaces.NewsService
	PortfolioService interfaces.PortfolioService
	AlertService     interfaces.AlertService
	WatchlistService interfaces.WatchlistService
	StartupTime      time.Time
}

// NewApp initializes clients, storage, and services from config. Clients are
// only constructed when their API keys are configured; services degrade to
// demo synthesis without them.
func NewApp(config *common.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config:      config,
		Logger:      logger,
		StartupTime: time.Now(),
	}

	sessions, err := sessionstore.NewStore(config.Session.Path, logger)
	if err != nil {
		return nil, err
	}
	a.Sessions = sessions

	var marketClient interfaces.MarketDataClient
	if !config.Clients.AlphaVantage.IsDemo() {
		marketClient = alphavantage.NewClient(
			config.Clients.AlphaVantage.APIKey,
			alphavantage.WithBaseURL(config.Clients.AlphaVantage.BaseURL),
			alphavantage.WithRateLimit(config.Clients.AlphaVantage.RateLimit),
			alphavantage.WithTimeout(config.Clients.AlphaVantage.GetTimeout()),
			alphavantage.WithLogger(logger),
		)
		logger.Info().Msg("Alpha Vantage client configured")
	} else {
		logger.Info().Msg("No Alpha Vantage key, quotes run in demo mode")
	}

	var textgen interfaces.TextGenClient
	if config.Clients.Gemini.APIKey != "" {
		client, err := gemini.NewClient(
			context.Background(),
			config.Clients.Gemini.APIKey,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithLogger(logger),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Gemini client init failed, AI analysis disabled")
		} else {
			textgen = client
			logger.Info().Str("model", config.Clients.Gemini.Model).Msg("Gemini client configured")
		}
	}

	var newsClient interfaces.NewsClient
	if config.Clients.NewsAPI.IsConfigured() {
		newsClient = newsapi.NewClient(
			config.Clients.NewsAPI.APIKey,
			newsapi.WithBaseURL(config.Clients.NewsAPI.BaseURL),
			newsapi.WithTimeout(config.Clients.NewsAPI.GetTimeout()),
			newsapi.WithLogger(logger),
		)
		logger.Info().Msg("NewsAPI client configured")
	}

	a.QuoteService = quote.NewService(marketClient, logger)
	a.RecommendService = recommend.NewService(textgen, logger)
	a.NewsService = news.NewService(newsClient, logger)
	a.PortfolioService = portfolio.NewService(logger)
	a.AlertService = alert.NewService(logger)
	a.WatchlistService = watchlist.NewService(logger)

	return a, nil
}

// Close releases application resources.
func (a *App) Close() error {
	if a.Sessions != nil {
		return a.Sessions.Close()
	}
	return nil
}
