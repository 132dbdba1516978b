package alphavantage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-key", WithBaseURL(server.URL), WithRateLimit(1000))
}

func TestGetGlobalQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "GLOBAL_QUOTE" {
			t.Errorf("expected GLOBAL_QUOTE function, got %s", got)
		}
		if got := r.URL.Query().Get("symbol"); got != "AAPL" {
			t.Errorf("expected AAPL symbol, got %s", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("expected test-key, got %s", got)
		}
		w.Write([]byte(`{
			"Global Quote": {
				"01. symbol": "AAPL",
				"05. price": "189.4100",
				"06. volume": "48087681",
				"09. change": "1.3500",
				"10. change percent": "0.7179%"
			}
		}`))
	})

	q, err := client.GetGlobalQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Price != 189.41 {
		t.Errorf("expected price 189.41, got %v", q.Price)
	}
	if q.Change != 1.35 {
		t.Errorf("expected change 1.35, got %v", q.Change)
	}
	if q.ChangePercent != 0.7179 {
		t.Errorf("expected change percent 0.7179, got %v", q.ChangePercent)
	}
	if q.Volume != 48087681 {
		t.Errorf("expected volume 48087681, got %d", q.Volume)
	}
	if q.Source != "alphavantage" {
		t.Errorf("expected alphavantage source, got %s", q.Source)
	}
}

func TestGetGlobalQuote_EmptyPayload(t *testing.T) {
	// Alpha Vantage returns 200 with an empty object for unknown symbols
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote": {}}`))
	})

	if _, err := client.GetGlobalQuote(context.Background(), "NOPE"); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestGetGlobalQuote_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	})

	_, err := client.GetGlobalQuote(context.Background(), "AAPL")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.StatusCode)
	}
	if apiErr.Function != "GLOBAL_QUOTE" {
		t.Errorf("expected GLOBAL_QUOTE function, got %s", apiErr.Function)
	}
}

func TestGetExchangeRate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("from_currency"); got != "BTC" {
			t.Errorf("expected BTC, got %s", got)
		}
		w.Write([]byte(`{
			"Realtime Currency Exchange Rate": {
				"5. Exchange Rate": "43210.98700000"
			}
		}`))
	})

	rate, err := client.GetExchangeRate(context.Background(), "BTC", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 43210.987 {
		t.Errorf("expected 43210.987, got %v", rate)
	}
}

func TestGetDailySeries_MostRecentFirst(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"Time Series (Daily)": {
				"2025-06-03": {"4. close": "103.00", "5. volume": "300"},
				"2025-06-05": {"4. close": "105.00", "5. volume": "500"},
				"2025-06-04": {"4. close": "104.00", "5. volume": "400"}
			}
		}`))
	})

	bars, err := client.GetDailySeries(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	if bars[0].Date != "2025-06-05" || bars[2].Date != "2025-06-03" {
		t.Errorf("bars not most-recent-first: %s .. %s", bars[0].Date, bars[2].Date)
	}
	if bars[0].Price != 105 || bars[0].Volume != 500 {
		t.Errorf("unexpected bar values: %+v", bars[0])
	}
}

func TestGetCompanyOverview_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", 300)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"Name": "Apple Inc",
			"Sector": "TECHNOLOGY",
			"Industry": "ELECTRONIC COMPUTERS",
			"Description": "` + long + `"
		}`))
	})

	info, err := client.GetCompanyOverview(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(info.Description) != 203 {
		t.Errorf("expected truncation to 200+ellipsis, got len %d", len(info.Description))
	}
	if !strings.HasSuffix(info.Description, "...") {
		t.Errorf("expected ellipsis suffix")
	}
}
