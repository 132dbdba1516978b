package server

import (
	"net/http"
	"strings"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Market data
	mux.HandleFunc("/api/stock/", s.handleStockQuote)
	mux.HandleFunc("/api/crypto/", s.handleCryptoQuote)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/market/overview", s.handleMarketOverview)
	mux.HandleFunc("/api/news", s.handleNews)
	mux.HandleFunc("/api/earnings", s.handleEarnings)
	mux.HandleFunc("/api/historical/", s.routeHistorical)

	// Session state
	mux.HandleFunc("/api/watchlist", s.handleWatchlistGet)
	mux.HandleFunc("/api/watchlist/add", s.handleWatchlistAdd)
	mux.HandleFunc("/api/watchlist/remove/", s.handleWatchlistRemove)
	mux.HandleFunc("/api/portfolio", s.handlePortfolioGet)
	mux.HandleFunc("/api/portfolio/add", s.handlePortfolioAdd)
	mux.HandleFunc("/api/portfolio/remove/", s.handlePortfolioRemove)
	mux.HandleFunc("/api/alerts", s.handleAlerts)

	// Assistant + preferences
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/theme", s.handleTheme)
}

// routeHistorical dispatches /api/historical/{symbol} and
// /api/historical/{symbol}/chart.png.
func (s *Server) routeHistorical(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/chart.png") {
		s.handleHistoricalChart(w, r)
		return
	}
	s.handleHistorical(w, r)
}
