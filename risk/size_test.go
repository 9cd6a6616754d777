package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultrasignals/tradeplan/market"
)

func newTestEngine(t *testing.T, profile Profile) *Engine {
	t.Helper()
	e, err := NewEngine(Policy{
		PortfolioValue: 100_000,
		Profile:        profile,
		MinPositionUSD: 100,
	})
	require.NoError(t, err)
	return e
}

func TestPositionSize_TierBoost(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Moderate)

	// BIST multiplier is 1.0, volatility low, so only the boost varies.
	usdUltra, _ := e.positionSize(Ultra, 10, market.BIST)
	usdMega, _ := e.positionSize(Mega, 10, market.BIST)
	usdGem, _ := e.positionSize(HiddenGem, 10, market.BIST)

	assert.InDelta(t, 3500, usdUltra, 1e-9) // 5% * 0.7
	assert.InDelta(t, 5000, usdMega, 1e-9)  // 5% * 1.0
	assert.InDelta(t, 5000, usdGem, 1e-9)   // 5% * 1.2, clamped to profile max
}

func TestPositionSize_VolatilityDampener(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Moderate)

	tests := []struct {
		name    string
		vol     float64
		wantUSD float64
	}{
		{"low volatility", 10, 5000},
		{"boundary 25 stays full", 25, 5000},
		{"just above 25", 25.01, 4000},
		{"boundary 40 stays mid", 40, 4000},
		{"just above 40", 40.01, 3000},
		{"extreme", 80, 3000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			usd, pct := e.positionSize(Mega, tt.vol, market.BIST)
			assert.InDelta(t, tt.wantUSD, usd, 1e-9)
			assert.InDelta(t, tt.wantUSD/100_000*100, pct, 1e-9)
		})
	}
}

func TestPositionSize_MonotoneNonIncreasingInVolatility(t *testing.T) {
	t.Parallel()

	for _, profile := range []Profile{Conservative, Moderate, Aggressive} {
		e := newTestEngine(t, profile)
		for _, m := range market.Supported() {
			prev := 1e18
			for vol := 0.0; vol <= 100; vol += 0.5 {
				usd, _ := e.positionSize(HiddenGem, vol, m)
				assert.LessOrEqual(t, usd, prev, "profile %s market %s vol %.1f", profile, m, vol)
				prev = usd
			}
		}
	}
}

func TestPositionSize_MarketMultiplier(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Conservative)

	// Conservative max is 3%; Mega boost 1.0 leaves room for market scaling.
	usdCrypto, _ := e.positionSize(Mega, 10, market.Crypto)
	usdBIST, _ := e.positionSize(Mega, 10, market.BIST)
	usdNasdaq, _ := e.positionSize(Mega, 10, market.Nasdaq)

	assert.InDelta(t, 1800, usdCrypto, 1e-9) // 3% * 0.6
	assert.InDelta(t, 3000, usdBIST, 1e-9)
	assert.InDelta(t, 3000, usdNasdaq, 1e-9) // 3% * 1.2 clamped back to 3%
}

func TestPositionSize_MinimumFloor(t *testing.T) {
	t.Parallel()

	e, err := NewEngine(Policy{
		PortfolioValue: 10_000,
		Profile:        Conservative,
		MinPositionUSD: 500,
	})
	require.NoError(t, err)

	// 10k * 3% * 0.7 * 0.6 (vol) * 0.6 (crypto) = $75.60, below the floor.
	usd, pct := e.positionSize(Ultra, 50, market.Crypto)
	assert.InDelta(t, 500, usd, 1e-9)
	assert.InDelta(t, 5.0, pct, 1e-9)
}
