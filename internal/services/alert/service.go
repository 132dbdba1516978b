// Package alert manages price alerts and threshold sweeps
package alert

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

// Service implements AlertService. Alerts live in the caller's session state;
// the service only validates, appends, and sweeps.
type Service struct {
	logger *common.Logger
	now    func() time.Time
}

// ServiceOption configures the service
type ServiceOption func(*Service)

// WithClock sets the time source (tests inject a fixed one).
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new alert service
func NewService(logger *common.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and appends a new alert, returning the updated slice and
// the alert itself. The symbol is uppercased.
func (s *Service) Create(alerts []models.Alert, symbol string, target float64, alertType models.AlertType) ([]models.Alert, *models.Alert, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return alerts, nil, fmt.Errorf("%w: symbol is required", models.ErrInvalidInput)
	}
	if target <= 0 {
		return alerts, nil, fmt.Errorf("%w: target price must be positive", models.ErrInvalidInput)
	}
	if !alertType.Valid() {
		return alerts, nil, fmt.Errorf("%w: unknown alert type %q", models.ErrInvalidInput, alertType)
	}

	alert := models.Alert{
		ID:          uuid.New().String(),
		Symbol:      symbol,
		TargetPrice: target,
		AlertType:   alertType,
		CreatedAt:   s.now().UTC(),
	}

	alerts = append(alerts, alert)
	s.logger.Debug().Str("symbol", symbol).Float64("target", target).Str("type", string(alertType)).Msg("Alert created")
	return alerts, &alert, nil
}

// Sweep checks every untriggered alert against the current price and marks
// those whose threshold is crossed. Triggered alerts stay triggered; the
// return value holds only this sweep's newly triggered alerts.
func (s *Service) Sweep(ctx context.Context, alerts []models.Alert, priceFn interfaces.PriceFunc) []models.Alert {
	var triggered []models.Alert

	for i := range alerts {
		a := &alerts[i]
		if a.Triggered {
			continue
		}

		current := priceFn(ctx, a.Symbol)
		if !crossed(a.AlertType, current, a.TargetPrice) {
			continue
		}

		at := s.now().UTC()
		a.Triggered = true
		a.TriggeredAt = &at
		a.TriggeredPrice = current
		triggered = append(triggered, *a)

		s.logger.Info().Str("symbol", a.Symbol).Float64("target", a.TargetPrice).Float64("price", current).Msg("Alert triggered")
	}

	return triggered
}

// crossed reports whether the price satisfies the alert condition. The legacy
// "price" type is stored but never fires.
func crossed(alertType models.AlertType, current, target float64) bool {
	switch alertType {
	case models.AlertPriceAbove:
		return current >= target
	case models.AlertPriceBelow:
		return current <= target
	default:
		return false
	}
}

// Ensure Service implements AlertService
var _ interfaces.AlertService = (*Service)(nil)
