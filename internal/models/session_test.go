package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_Empty(t *testing.T) {
	state := &SessionState{}
	state.ApplyDefaults()

	require.Len(t, state.Watchlist, 10)
	assert.Equal(t, "AAPL", state.Watchlist[0])

	require.Len(t, state.Portfolio, 4)
	assert.Equal(t, Position{Shares: 10, AvgPrice: 150.25}, state.Portfolio["AAPL"])
	assert.Equal(t, Position{Shares: 15, AvgPrice: 210.30}, state.Portfolio["V"])

	require.NotNil(t, state.PriceAlerts)
	assert.Empty(t, state.PriceAlerts)
	assert.Equal(t, "dark", state.Theme)
}

func TestApplyDefaults_FieldsDefaultIndependently(t *testing.T) {
	state := &SessionState{
		Watchlist: []string{"TSLA"},
		Theme:     "light",
	}
	state.ApplyDefaults()

	// Present fields untouched
	assert.Equal(t, []string{"TSLA"}, state.Watchlist)
	assert.Equal(t, "light", state.Theme)

	// Absent fields seeded
	require.Len(t, state.Portfolio, 4)
	require.NotNil(t, state.PriceAlerts)
}

func TestApplyDefaults_EmptySlicesNotReseeded(t *testing.T) {
	state := &SessionState{
		Watchlist: []string{},
		Portfolio: map[string]Position{},
	}
	state.ApplyDefaults()

	assert.Empty(t, state.Watchlist)
	assert.Empty(t, state.Portfolio)
}

func TestAlertType_Valid(t *testing.T) {
	assert.True(t, AlertPriceAbove.Valid())
	assert.True(t, AlertPriceBelow.Valid())
	assert.True(t, AlertPrice.Valid())
	assert.False(t, AlertType("price_sideways").Valid())
	assert.False(t, AlertType("").Valid())
}
