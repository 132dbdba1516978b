package models

import "time"

// AlertType selects the trigger direction for a price alert.
type AlertType string

const (
	AlertPriceAbove AlertType = "price_above"
	AlertPriceBelow AlertType = "price_below"
	// AlertPrice is the legacy directionless type. Alerts created with it are
	// stored but never trigger during a sweep.
	AlertPrice AlertType = "price"
)

// Valid reports whether t is one of the accepted alert types.
func (t AlertType) Valid() bool {
	switch t {
	case AlertPriceAbove, AlertPriceBelow, AlertPrice:
		return true
	}
	return false
}

// Alert is a price alert record. Once Triggered is set the record is never
// re-evaluated; the triggered-* fields are written exactly once.
type Alert struct {
	ID             string     `json:"id"`
	Symbol         string     `json:"symbol"`
	TargetPrice    float64    `json:"target_price"`
	AlertType      AlertType  `json:"alert_type"`
	CreatedAt      time.Time  `json:"created_at"`
	Triggered      bool       `json:"triggered"`
	TriggeredAt    *time.Time `json:"triggered_at,omitempty"`
	TriggeredPrice float64    `json:"triggered_price,omitempty"`
}
