package risk

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultrasignals/tradeplan/market"
)

func TestGenerate_WorkedExample(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Moderate)

	setup, err := e.Generate(Inputs{
		Symbol:     "AAPL",
		Price:      182.50,
		Score:      88.7,
		Volatility: 25,
		ATR:        3.65,
		Market:     market.Nasdaq,
	})
	require.NoError(t, err)

	assert.Equal(t, HiddenGem, setup.Tier)
	assert.Equal(t, Moderate, setup.Profile)

	// 5% * 1.2 boost * 1.2 NASDAQ, clamped back to the 5% profile ceiling.
	assert.InDelta(t, 5000, setup.PositionSizeUSD, 1e-6)
	assert.InDelta(t, 5.0, setup.PositionSizePct, 1e-9)

	// Hidden-gem 5% base, no widening at 25% vol; ATR floor 4% loses.
	assert.InDelta(t, 5.0, setup.StopLossPct, 1e-9)
	assert.InDelta(t, 173.375, setup.StopLoss, 1e-6)

	// Score 88.7 interpolates 67.7% into each range, NASDAQ scales by 0.9.
	assert.InDelta(t, 12.0471428571, setup.TakeProfitPct1, 1e-6)
	assert.InDelta(t, 24.0942857143, setup.TakeProfitPct2, 1e-6)
	assert.InDelta(t, 36.1414285714, setup.TakeProfitPct3, 1e-6)
	assert.InDelta(t, 204.4860357, setup.TakeProfit1, 1e-4)
	assert.InDelta(t, 226.4720714, setup.TakeProfit2, 1e-4)
	assert.InDelta(t, 248.4581071, setup.TakeProfit3, 1e-4)

	assert.InDelta(t, 2.4094285714, setup.RiskReward, 1e-6)
	assert.InDelta(t, 250, setup.MaxLossUSD, 1e-6)
	assert.InDelta(t, 1204.7142857, setup.ExpectedProfitUSD, 1e-4)
	assert.InDelta(t, 0.95, setup.Confidence, 1e-12)
	assert.Equal(t, HoldingPeriod{"2-3 months", "position"}, setup.HoldingPeriod)
}

func TestGenerate_CryptoSizesBelowNasdaq(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Moderate)

	crypto, err := e.Generate(Inputs{
		Symbol: "BTC-USD", Price: 61250, Score: 87.5, Volatility: 65, ATR: 1800, Market: market.Crypto,
	})
	require.NoError(t, err)

	nasdaq, err := e.Generate(Inputs{
		Symbol: "NVDA", Price: 61250, Score: 87.5, Volatility: 25, ATR: 1800, Market: market.Nasdaq,
	})
	require.NoError(t, err)

	// The 0.6 volatility dampener and the 0.6 crypto multiplier compound.
	assert.Less(t, crypto.PositionSizePct, nasdaq.PositionSizePct)
	assert.InDelta(t, 2.16, crypto.PositionSizePct, 1e-9)
	assert.InDelta(t, 5.0, nasdaq.PositionSizePct, 1e-9)
}

func TestGenerate_LevelOrderingAndRoundTrip(t *testing.T) {
	t.Parallel()

	for _, profile := range []Profile{Conservative, Moderate, Aggressive} {
		e := newTestEngine(t, profile)
		for _, m := range market.Supported() {
			for _, score := range []float64{65, 70, 75, 84.99, 85, 96} {
				for _, vol := range []float64{0, 18, 25.5, 33, 72} {
					setup, err := e.Generate(Inputs{
						Symbol: "TEST", Price: 250, Score: score, Volatility: vol, ATR: 4.2, Market: m,
					})
					require.NoError(t, err, "%s/%s score %.2f vol %.1f", profile, m, score, vol)

					assert.Greater(t, setup.StopLoss, 0.0)
					assert.Less(t, setup.StopLoss, setup.EntryPrice)
					assert.Greater(t, setup.TakeProfit1, setup.EntryPrice)
					assert.Greater(t, setup.TakeProfit2, setup.TakeProfit1)
					assert.Greater(t, setup.TakeProfit3, setup.TakeProfit2)
					assert.Greater(t, setup.PositionSizeUSD, 0.0)

					sum := setup.ExitFraction1 + setup.ExitFraction2 + setup.ExitFraction3
					assert.InDelta(t, 1.0, sum, 1e-9)

					rr, err := RiskReward(setup.EntryPrice, setup.StopLoss, setup.TakeProfit1)
					require.NoError(t, err)
					assert.Equal(t, setup.RiskReward, rr, "risk/reward must round-trip exactly")
				}
			}
		}
	}
}

func TestGenerate_InvalidInputs(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Moderate)

	valid := Inputs{Symbol: "THYAO", Price: 290, Score: 78, Volatility: 22, ATR: 6.1, Market: market.BIST}

	tests := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"empty symbol", func(in *Inputs) { in.Symbol = "" }},
		{"zero price", func(in *Inputs) { in.Price = 0 }},
		{"negative price", func(in *Inputs) { in.Price = -10 }},
		{"negative volatility", func(in *Inputs) { in.Volatility = -1 }},
		{"negative atr", func(in *Inputs) { in.ATR = -0.5 }},
		{"score above range", func(in *Inputs) { in.Score = 100.5 }},
		{"score below range", func(in *Inputs) { in.Score = -3 }},
		{"score below signal threshold", func(in *Inputs) { in.Score = 52 }},
		{"unsupported market", func(in *Inputs) { in.Market = market.Market("NYSE") }},
		{"stop beyond entry", func(in *Inputs) { in.ATR = 200 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := valid
			tt.mutate(&in)
			_, err := e.Generate(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestNewEngine_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy Policy
	}{
		{"zero portfolio", Policy{PortfolioValue: 0, Profile: Moderate}},
		{"negative minimum position", Policy{PortfolioValue: 1000, Profile: Moderate, MinPositionUSD: -1}},
		{"unknown profile", Policy{PortfolioValue: 1000, Profile: Profile("YOLO")}},
		{"non-positive multiplier", Policy{
			PortfolioValue: 1000,
			Profile:        Moderate,
			Markets:        map[market.Market]market.Multipliers{market.BIST: {Size: 0, Target: 1}},
		}},
		{"incomplete holding table", Policy{
			PortfolioValue: 1000,
			Profile:        Moderate,
			Markets:        map[market.Market]market.Multipliers{market.BIST: {Size: 1, Target: 1}},
			HoldingPeriods: map[HoldingKey]HoldingPeriod{
				{market.BIST, HiddenGem}: {"3-6 months", "long hold"},
				{market.BIST, Mega}:      {"2-3 months", "position"},
				// ULTRA row deliberately missing
			},
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewEngine(tt.policy)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestGenerate_DeterministicUnderConcurrency(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, Aggressive)
	in := Inputs{Symbol: "ETH-USD", Price: 3405.5, Score: 81.2, Volatility: 48, ATR: 92.4, Market: market.Crypto}

	want, err := e.Generate(in)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]TradeSetup, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := e.Generate(in)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestRiskReward_RejectsBrokenLevels(t *testing.T) {
	t.Parallel()

	_, err := RiskReward(100, 100, 110)
	assert.ErrorIs(t, err, ErrInvariant)

	_, err = RiskReward(100, 105, 110)
	assert.ErrorIs(t, err, ErrInvariant)

	_, err = RiskReward(100, 95, 100)
	assert.ErrorIs(t, err, ErrInvariant)
}
