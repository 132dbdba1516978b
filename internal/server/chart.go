package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// handleHistoricalChart renders the historical series as a PNG line chart.
func (s *Server) handleHistoricalChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := strings.ToUpper(PathParam(r, "/api/historical/", "/chart.png"))
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "No symbol provided")
		return
	}

	bars := s.app.QuoteService.GetHistorical(r.Context(), symbol, historicalDays(r))

	xs := make([]time.Time, 0, len(bars))
	ys := make([]float64, 0, len(bars))
	for _, bar := range bars {
		t, err := time.Parse("2006-01-02", bar.Date)
		if err != nil {
			continue
		}
		xs = append(xs, t)
		ys = append(ys, bar.Price)
	}

	if len(xs) < 2 {
		WriteError(w, http.StatusInternalServerError, "Not enough data to chart")
		return
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s %d-day price history", symbol, len(xs)),
		Width:  900,
		Height: 400,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    symbol,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: drawing.ColorBlue,
					StrokeWidth: 2.0,
				},
			},
		},
	}

	w.Header().Set("Content-Type", "image/png")
	if err := graph.Render(chart.PNG, w); err != nil {
		s.logger.Error().Err(err).Str("symbol", symbol).Msg("Chart render failed")
	}
}
