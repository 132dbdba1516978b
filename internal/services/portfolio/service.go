// Package portfolio merges positions and values them at current prices
package portfolio

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

// Service implements PortfolioService. It is stateless; positions live in the
// caller's session state.
type Service struct {
	logger *common.Logger
}

// NewService creates a new portfolio service
func NewService(logger *common.Logger) *Service {
	return &Service{logger: logger}
}

// Add merges a purchase into the positions map using weighted-average cost.
// The symbol is uppercased; shares and price must be positive.
func (s *Service) Add(positions map[string]models.Position, symbol string, shares int, price float64) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return fmt.Errorf("%w: symbol is required", models.ErrInvalidInput)
	}
	if shares <= 0 {
		return fmt.Errorf("%w: shares must be positive", models.ErrInvalidInput)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be positive", models.ErrInvalidInput)
	}

	if existing, ok := positions[symbol]; ok {
		totalShares := existing.Shares + shares
		totalCost := float64(existing.Shares)*existing.AvgPrice + float64(shares)*price
		positions[symbol] = models.Position{
			Shares:   totalShares,
			AvgPrice: totalCost / float64(totalShares),
		}
	} else {
		positions[symbol] = models.Position{Shares: shares, AvgPrice: price}
	}

	s.logger.Debug().Str("symbol", symbol).Int("shares", shares).Float64("price", price).Msg("Position added")
	return nil
}

// Remove deletes a position. Removing an absent symbol is a no-op.
func (s *Service) Remove(positions map[string]models.Position, symbol string) {
	delete(positions, strings.ToUpper(strings.TrimSpace(symbol)))
}

// Valuation prices every position with priceFn and totals the result.
// Positions are returned in symbol order.
func (s *Service) Valuation(ctx context.Context, positions map[string]models.Position, priceFn interfaces.PriceFunc) *models.PortfolioValuation {
	symbols := make([]string, 0, len(positions))
	for symbol := range positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	valuation := &models.PortfolioValuation{
		Positions: make([]models.PositionValuation, 0, len(symbols)),
	}

	for _, symbol := range symbols {
		pos := positions[symbol]
		current := priceFn(ctx, symbol)

		value := current * float64(pos.Shares)
		cost := pos.AvgPrice * float64(pos.Shares)
		gainLoss := value - cost

		var gainLossPct float64
		if cost != 0 {
			gainLossPct = gainLoss / cost * 100
		}

		valuation.Positions = append(valuation.Positions, models.PositionValuation{
			Symbol:          symbol,
			Shares:          pos.Shares,
			AvgPrice:        pos.AvgPrice,
			CurrentPrice:    current,
			Value:           round2(value),
			GainLoss:        round2(gainLoss),
			GainLossPercent: round2(gainLossPct),
		})

		valuation.TotalValue += value
		valuation.TotalGainLoss += gainLoss
	}

	totalCost := valuation.TotalValue - valuation.TotalGainLoss
	if totalCost != 0 {
		valuation.TotalGainLossPercent = round2(valuation.TotalGainLoss / totalCost * 100)
	}
	valuation.TotalValue = round2(valuation.TotalValue)
	valuation.TotalGainLoss = round2(valuation.TotalGainLoss)

	return valuation
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
