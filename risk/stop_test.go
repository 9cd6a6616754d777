package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopLoss_TierBase(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Moderate)

	tests := []struct {
		name    string
		tier    ScoreTier
		wantPct float64
	}{
		{"hidden gem tightest", HiddenGem, 5},
		{"mega", Mega, 7},
		{"ultra widest", Ultra, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			price, pct, err := e.stopLoss(tt.tier, 10, 0, 100)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantPct, pct, 1e-9)
			assert.InDelta(t, 100*(1-tt.wantPct/100), price, 1e-9)
		})
	}
}

func TestStopLoss_VolatilityWidening(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Moderate)

	tests := []struct {
		name    string
		vol     float64
		wantPct float64
	}{
		{"calm", 10, 5.0},
		{"boundary 25 unchanged", 25, 5.0},
		{"just above 25", 25.01, 6.0},
		{"boundary 40 unchanged", 40, 6.0},
		{"just above 40", 40.01, 7.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, pct, err := e.stopLoss(HiddenGem, tt.vol, 0, 100)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantPct, pct, 1e-9)
		})
	}
}

func TestStopLoss_MonotoneNonDecreasingInVolatility(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Moderate)

	prev := -1.0
	for vol := 0.0; vol <= 100; vol += 0.5 {
		_, pct, err := e.stopLoss(Mega, vol, 1.5, 100)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pct, prev, "vol %.1f", vol)
		prev = pct
	}
}

func TestStopLoss_ATRFloor(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Moderate)

	// 2 * 4 / 100 = 8% beats the 5% hidden-gem base.
	price, pct, err := e.stopLoss(HiddenGem, 10, 4, 100)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, pct, 1e-9)
	assert.InDelta(t, 92.0, price, 1e-9)

	// A small ATR leaves the score-based stop in charge.
	_, pct, err = e.stopLoss(HiddenGem, 10, 1, 100)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, pct, 1e-9)
}

func TestStopLoss_RejectsPathologicalATR(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Moderate)

	// 2 * 60 / 100 = 120% would place the stop below zero.
	_, _, err := e.stopLoss(Ultra, 10, 60, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
