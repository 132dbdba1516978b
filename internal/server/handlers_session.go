package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/models"
)

// loadSession materializes the request's session state. The middleware
// guarantees a session ID is present.
func (s *Server) loadSession(r *http.Request) (string, *models.SessionState, error) {
	sid := common.SessionIDFromContext(r.Context())
	if sid == "" {
		return "", nil, fmt.Errorf("no session in request context")
	}
	state, err := s.app.Sessions.Load(r.Context(), sid)
	if err != nil {
		return "", nil, err
	}
	return sid, state, nil
}

// writeServiceError maps service errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrInvalidInput) {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteError(w, http.StatusInternalServerError, err.Error())
}

// --- Watchlist handlers ---

func (s *Server) handleWatchlistGet(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	_, state, err := s.loadSession(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, state.Watchlist)
}

func (s *Server) handleWatchlistAdd(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Symbol string `json:"symbol"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Symbol) == "" {
		WriteError(w, http.StatusBadRequest, "No symbol provided")
		return
	}

	sid, state, err := s.loadSession(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	updated, err := s.app.WatchlistService.Add(state.Watchlist, req.Symbol)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	state.Watchlist = updated

	if err := s.app.Sessions.Save(r.Context(), sid, state); err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"watchlist": state.Watchlist,
	})
}

func (s *Server) handleWatchlistRemove(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := PathParam(r, "/api/watchlist/remove/", "")
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "No symbol provided")
		return
	}

	sid, state, err := s.loadSession(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	state.Watchlist = s.app.WatchlistService.Remove(state.Watchlist, symbol)

	if err := s.app.Sessions.Save(r.Context(), sid, state); err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"watchlist": state.Watchlist,
	})
}

// --- Portfolio handlers ---

func (s *Server) handlePortfolioGet(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	_, state, err := s.loadSession(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	valuation := s.app.PortfolioService.Valuation(r.Context(), state.Portfolio, s.currentPrice)
	WriteJSON(w, http.StatusOK, valuation)
}

func (s *Server) handlePortfolioAdd(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Symbol   string  `json:"symbol"`
		Shares   int     `json:"shares"`
		AvgPrice float64 `json:"avg_price"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	sid, state, err := s.loadSession(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	if err := s.app.PortfolioService.Add(state.Portfolio, req.Symbol, req.Shares, req.AvgPrice); err != nil {
		writeServiceError(w, err)
		return
	}

	if err := s.app.Sessions.Save(r.Context(), sid, state); err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"portfolio": state.Portfolio,
	})
}

func (s *Server) handlePortfolioRemove(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := PathParam(r, "/api/portfolio/remove/", "")
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "No symbol provided")
		return
	}

	sid, state, err := s.loadSession(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	s.app.PortfolioService.Remove(state.Portfolio, symbol)

	if err := s.app.Sessions.Save(r.Context(), sid, state); err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"portfolio": state.Portfolio,
	})
}

// --- Alert handlers ---

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleAlertsSweep(w, r)
	case http.MethodPost:
		s.handleAlertCreate(w, r)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleAlertCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Symbol      string  `json:"symbol"`
		TargetPrice float64 `json:"target_price"`
		AlertType   string  `json:"alert_type"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	// Missing type falls back to the legacy directionless "price"
	alertType := models.AlertType(req.AlertType)
	if req.AlertType == "" {
		alertType = models.AlertPrice
	}

	sid, state, err := s.loadSession(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	updated, _, err := s.app.AlertService.Create(state.PriceAlerts, req.Symbol, req.TargetPrice, alertType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	state.PriceAlerts = updated

	if err := s.app.Sessions.Save(r.Context(), sid, state); err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"alerts":  state.PriceAlerts,
	})
}

func (s *Server) handleAlertsSweep(w http.ResponseWriter, r *http.Request) {
	sid, state, err := s.loadSession(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	triggered := s.app.AlertService.Sweep(r.Context(), state.PriceAlerts, s.currentPrice)

	// Triggered flags must survive later sweeps
	if len(triggered) > 0 {
		if err := s.app.Sessions.Save(r.Context(), sid, state); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
			return
		}
	}

	if triggered == nil {
		triggered = []models.Alert{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"alerts":           state.PriceAlerts,
		"triggered_alerts": triggered,
	})
}

// currentPrice resolves a symbol to its present price for valuation and
// alert sweeps. Total: demo synthesis covers upstream failures.
func (s *Server) currentPrice(ctx context.Context, symbol string) float64 {
	return s.app.QuoteService.GetQuote(ctx, symbol).Price
}

// --- Assistant + preference handlers ---

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, http.StatusBadRequest, "No message provided")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"response": s.app.RecommendService.Chat(r.Context(), req.Message),
	})
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Theme string `json:"theme"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Theme != "dark" && req.Theme != "light" {
		WriteError(w, http.StatusBadRequest, "Invalid theme")
		return
	}

	sid, state, err := s.loadSession(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	state.Theme = req.Theme

	if err := s.app.Sessions.Save(r.Context(), sid, state); err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Session error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"theme":   state.Theme,
	})
}
