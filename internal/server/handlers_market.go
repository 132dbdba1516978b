package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/models"
)

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// --- Market data handlers ---

func (s *Server) handleStockQuote(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := strings.ToUpper(PathParam(r, "/api/stock/", ""))
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "No symbol provided")
		return
	}

	WriteJSON(w, http.StatusOK, s.app.QuoteService.GetQuote(r.Context(), symbol))
}

func (s *Server) handleCryptoQuote(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := strings.ToUpper(PathParam(r, "/api/crypto/", ""))
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "No symbol provided")
		return
	}

	WriteJSON(w, http.StatusOK, s.app.QuoteService.GetCryptoQuote(r.Context(), symbol))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Symbol       string `json:"symbol"`
		AnalysisType string `json:"analysis_type"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "No symbol provided")
		return
	}

	mode := models.AnalysisMode(req.AnalysisType)
	if mode == "" {
		mode = models.AnalysisDeep
	}

	ctx := r.Context()
	stock := s.app.QuoteService.GetQuote(ctx, symbol)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"stock":           stock,
		"analysis":        s.app.RecommendService.Recommend(ctx, stock, mode),
		"historical_data": s.app.QuoteService.GetHistorical(ctx, symbol, 30),
		"company_info":    s.app.QuoteService.GetCompanyInfo(ctx, symbol),
		"news_sentiment":  s.app.RecommendService.AnalyzeSentiment(ctx, symbol),
	})
}

func (s *Server) handleMarketOverview(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.app.QuoteService.GetMarketOverview(r.Context()))
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.app.NewsService.GetHeadlines(r.Context()))
}

func (s *Server) handleEarnings(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.app.QuoteService.GetEarningsCalendar(r.Context()))
}

// historicalDays parses the ?days query, clamping to 1..365 with a default
// of 30.
func historicalDays(r *http.Request) int {
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			days = n
		}
	}
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}
	return days
}

func (s *Server) handleHistorical(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := strings.ToUpper(PathParam(r, "/api/historical/", ""))
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "No symbol provided")
		return
	}

	WriteJSON(w, http.StatusOK, s.app.QuoteService.GetHistorical(r.Context(), symbol, historicalDays(r)))
}
