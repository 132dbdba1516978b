// Package watchlist manages the session watchlist
package watchlist

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

// MaxSymbols caps the watchlist length.
const MaxSymbols = 20

// Service implements WatchlistService over a session-held symbol slice.
type Service struct {
	logger *common.Logger
}

// NewService creates a new watchlist service
func NewService(logger *common.Logger) *Service {
	return &Service{logger: logger}
}

// Add appends a symbol if not already present. Adding a duplicate, or adding
// to a list already at MaxSymbols, is a silent no-op.
func (s *Service) Add(list []string, symbol string) ([]string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return list, fmt.Errorf("%w: symbol is required", models.ErrInvalidInput)
	}

	for _, existing := range list {
		if existing == symbol {
			return list, nil
		}
	}
	if len(list) >= MaxSymbols {
		return list, nil
	}

	s.logger.Debug().Str("symbol", symbol).Msg("Watchlist symbol added")
	return append(list, symbol), nil
}

// Remove deletes a symbol, preserving order. Removing an absent symbol is a
// no-op.
func (s *Service) Remove(list []string, symbol string) []string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for i, existing := range list {
		if existing == symbol {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Ensure Service implements WatchlistService
var _ interfaces.WatchlistService = (*Service)(nil)
