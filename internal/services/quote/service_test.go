package quote

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/models"
)

func newTestService(seed uint64, opts ...ServiceOption) *Service {
	opts = append([]ServiceOption{WithRand(rand.New(rand.NewPCG(seed, 0)))}, opts...)
	return NewService(nil, common.NewSilentLogger(), opts...)
}

func TestGetQuote_DemoKnownSymbol(t *testing.T) {
	svc := newTestService(1)

	for i := 0; i < 100; i++ {
		q := svc.GetQuote(context.Background(), "AAPL")

		if q.Symbol != "AAPL" {
			t.Fatalf("expected symbol AAPL, got %s", q.Symbol)
		}
		if q.Source != "demo" {
			t.Fatalf("expected demo source, got %s", q.Source)
		}
		if q.Price < 165 || q.Price > 185 {
			t.Errorf("price %v outside base±10", q.Price)
		}
		if q.Change < -5 || q.Change > 5 {
			t.Errorf("change %v outside ±5", q.Change)
		}
		if q.Volume < 1_000_000 || q.Volume > 10_000_000 {
			t.Errorf("volume %d outside range", q.Volume)
		}
		if q.PERatio < 10 || q.PERatio > 40 {
			t.Errorf("pe ratio %v outside range", q.PERatio)
		}
		if q.DividendYield < 0 || q.DividendYield > 4 {
			t.Errorf("dividend yield %v outside range", q.DividendYield)
		}
		if q.High52Week < q.Price*1.1-0.01 || q.High52Week > q.Price*1.5+0.01 {
			t.Errorf("52wk high %v inconsistent with price %v", q.High52Week, q.Price)
		}
		if q.Low52Week < q.Price*0.5-0.01 || q.Low52Week > q.Price*0.9+0.01 {
			t.Errorf("52wk low %v inconsistent with price %v", q.Low52Week, q.Price)
		}
	}
}

func TestGetQuote_UnknownSymbolUsesDefaultBase(t *testing.T) {
	svc := newTestService(2)

	for i := 0; i < 50; i++ {
		q := svc.GetQuote(context.Background(), "ZZZZ")
		if q.Price < 90 || q.Price > 110 {
			t.Errorf("unknown symbol price %v outside 100±10", q.Price)
		}
	}
}

func TestGetCryptoQuote_Demo(t *testing.T) {
	svc := newTestService(3)

	q := svc.GetCryptoQuote(context.Background(), "BTC")
	if q.Symbol != "BTC" {
		t.Fatalf("expected symbol BTC, got %s", q.Symbol)
	}
	if q.Source != "demo" {
		t.Fatalf("expected demo source, got %s", q.Source)
	}
	if q.Price < 49990 || q.Price > 50010 {
		t.Errorf("price %v outside base±10", q.Price)
	}
	if q.Volume < 1_000_000 || q.Volume > 1_000_000_000 {
		t.Errorf("volume %d outside crypto range", q.Volume)
	}
}

func TestGetHistorical_ExactDaysChronological(t *testing.T) {
	svc := newTestService(4)

	for _, days := range []int{1, 7, 30, 365} {
		bars := svc.GetHistorical(context.Background(), "AAPL", days)
		if len(bars) != days {
			t.Fatalf("days=%d: got %d bars", days, len(bars))
		}
		for i := 1; i < len(bars); i++ {
			if bars[i].Date <= bars[i-1].Date {
				t.Fatalf("days=%d: bars not chronological at %d: %s then %s", days, i, bars[i-1].Date, bars[i].Date)
			}
		}
	}
}

func TestGetHistorical_DefaultsTo30(t *testing.T) {
	svc := newTestService(5)

	for _, days := range []int{0, -5} {
		bars := svc.GetHistorical(context.Background(), "MSFT", days)
		if len(bars) != 30 {
			t.Fatalf("days=%d: expected 30 bars, got %d", days, len(bars))
		}
	}
}

func TestGetHistorical_FloorClamp(t *testing.T) {
	svc := newTestService(6)

	bars := svc.GetHistorical(context.Background(), "AAPL", 365)
	floor := 175 * 0.7
	for _, bar := range bars {
		if bar.Price < floor-0.01 {
			t.Fatalf("bar %s price %v below floor %v", bar.Date, bar.Price, floor)
		}
	}
}

func TestGetMarketOverview(t *testing.T) {
	svc := newTestService(7)

	overview := svc.GetMarketOverview(context.Background())

	if len(overview.Indices) != 5 {
		t.Fatalf("expected 5 indices, got %d", len(overview.Indices))
	}
	for _, symbol := range []string{"SPY", "QQQ", "DIA", "IWM", "VIX"} {
		if _, ok := overview.Indices[symbol]; !ok {
			t.Errorf("missing index %s", symbol)
		}
	}
	if len(overview.Stocks) != 10 {
		t.Errorf("expected 10 stocks, got %d", len(overview.Stocks))
	}
	if len(overview.Crypto) != 4 {
		t.Errorf("expected 4 cryptos, got %d", len(overview.Crypto))
	}
	for _, q := range overview.Stocks {
		if q.Source != "demo" {
			t.Errorf("stock %s: expected demo source, got %s", q.Symbol, q.Source)
		}
	}
}

func TestGetCompanyInfo_CannedAndFallback(t *testing.T) {
	svc := newTestService(8)

	info := svc.GetCompanyInfo(context.Background(), "AAPL")
	if info.Name != "Apple Inc." {
		t.Errorf("expected canned Apple profile, got %s", info.Name)
	}

	info = svc.GetCompanyInfo(context.Background(), "ZZZZ")
	if info.Name != "ZZZZ Corporation" {
		t.Errorf("expected generic fallback, got %s", info.Name)
	}
	if info.Sector != "Various" {
		t.Errorf("expected Various sector, got %s", info.Sector)
	}
}

func TestGetEarningsCalendar(t *testing.T) {
	today := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(9, WithClock(func() time.Time { return today }))

	events := svc.GetEarningsCalendar(context.Background())
	if len(events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(events))
	}

	min := today.AddDate(0, 0, 1).Format("2006-01-02")
	max := today.AddDate(0, 0, 30).Format("2006-01-02")
	for _, ev := range events {
		if ev.Date < min || ev.Date > max {
			t.Errorf("%s: date %s outside [%s, %s]", ev.Symbol, ev.Date, min, max)
		}
		if ev.EstimatedEPS < 0.5 || ev.EstimatedEPS > 5.0 {
			t.Errorf("%s: eps %v outside range", ev.Symbol, ev.EstimatedEPS)
		}
		if ev.EstimatedRevenue < 1e9 || ev.EstimatedRevenue > 1e11 {
			t.Errorf("%s: revenue %v outside range", ev.Symbol, ev.EstimatedRevenue)
		}
	}
}

// fakeClient returns fixed data or errors to exercise the live paths.
type fakeClient struct {
	quote     *models.Quote
	rate      float64
	bars      []models.HistoricalBar
	info      *models.CompanyInfo
	failQuote bool
	failRate  bool
	failBars  bool
}

func (f *fakeClient) GetGlobalQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	if f.failQuote {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return f.quote, nil
}

func (f *fakeClient) GetExchangeRate(ctx context.Context, from, to string) (float64, error) {
	if f.failRate {
		return 0, fmt.Errorf("upstream unavailable")
	}
	return f.rate, nil
}

func (f *fakeClient) GetDailySeries(ctx context.Context, symbol string) ([]models.HistoricalBar, error) {
	if f.failBars {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return f.bars, nil
}

func (f *fakeClient) GetCompanyOverview(ctx context.Context, symbol string) (*models.CompanyInfo, error) {
	if f.info == nil {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return f.info, nil
}

func TestGetQuote_LiveFallsBackOnError(t *testing.T) {
	client := &fakeClient{failQuote: true}
	svc := NewService(client, common.NewSilentLogger(), WithRand(rand.New(rand.NewPCG(10, 0))))

	q := svc.GetQuote(context.Background(), "AAPL")
	if q.Source != "demo" {
		t.Fatalf("expected demo fallback, got source %s", q.Source)
	}
}

func TestGetQuote_LivePassthrough(t *testing.T) {
	live := &models.Quote{Symbol: "AAPL", Price: 189.50, Source: "alphavantage"}
	svc := NewService(&fakeClient{quote: live}, common.NewSilentLogger())

	q := svc.GetQuote(context.Background(), "AAPL")
	if q != live {
		t.Fatalf("expected live quote passthrough, got %+v", q)
	}
}

func TestGetCryptoQuote_LiveRate(t *testing.T) {
	svc := NewService(&fakeClient{rate: 43210.987}, common.NewSilentLogger(), WithRand(rand.New(rand.NewPCG(11, 0))))

	q := svc.GetCryptoQuote(context.Background(), "BTC")
	if q.Source != "alphavantage" {
		t.Fatalf("expected live source, got %s", q.Source)
	}
	if q.Price != 43210.99 {
		t.Errorf("expected rounded price 43210.99, got %v", q.Price)
	}
	if q.ChangePercent != 1.0 {
		t.Errorf("expected placeholder change percent 1.0, got %v", q.ChangePercent)
	}
}

func TestGetHistorical_LiveSeriesReversed(t *testing.T) {
	// Upstream serves most recent first.
	bars := []models.HistoricalBar{
		{Date: "2025-06-05", Price: 105},
		{Date: "2025-06-04", Price: 104},
		{Date: "2025-06-03", Price: 103},
		{Date: "2025-06-02", Price: 102},
		{Date: "2025-06-01", Price: 101},
	}
	svc := NewService(&fakeClient{bars: bars}, common.NewSilentLogger())

	out := svc.GetHistorical(context.Background(), "AAPL", 3)
	if len(out) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(out))
	}
	if out[0].Date != "2025-06-03" || out[2].Date != "2025-06-05" {
		t.Fatalf("expected chronological recent window, got %s..%s", out[0].Date, out[2].Date)
	}
}

func TestGetHistorical_LiveSeriesTooShortFallsBack(t *testing.T) {
	bars := []models.HistoricalBar{{Date: "2025-06-05", Price: 105}}
	svc := NewService(&fakeClient{bars: bars}, common.NewSilentLogger(), WithRand(rand.New(rand.NewPCG(12, 0))))

	out := svc.GetHistorical(context.Background(), "AAPL", 30)
	if len(out) != 30 {
		t.Fatalf("expected synthesized 30 bars, got %d", len(out))
	}
}
