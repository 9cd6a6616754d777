package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ultrasignals/tradeplan/market"
	"github.com/ultrasignals/tradeplan/risk"
)

func TestFormatSetup(t *testing.T) {
	t.Parallel()

	msg := FormatSetup(risk.TradeSetup{
		Symbol:            "AAPL",
		Market:            market.Nasdaq,
		Tier:              risk.HiddenGem,
		Profile:           risk.Moderate,
		EntryPrice:        182.50,
		PositionSizeUSD:   5000,
		PositionSizePct:   5.0,
		StopLoss:          173.38,
		StopLossPct:       5.0,
		TakeProfit1:       204.49,
		TakeProfit2:       226.47,
		TakeProfit3:       248.46,
		TakeProfitPct1:    12.0,
		TakeProfitPct2:    24.1,
		TakeProfitPct3:    36.1,
		ExitFraction1:     0.33,
		ExitFraction2:     0.33,
		ExitFraction3:     0.34,
		RiskReward:        2.41,
		MaxLossUSD:        250,
		ExpectedProfitUSD: 1205,
		Confidence:        0.95,
		HoldingPeriod:     risk.HoldingPeriod{Range: "2-3 months", Urgency: "position"},
	})

	assert.Contains(t, msg, "<b>AAPL - HIDDEN GEM</b> [NASDAQ]")
	assert.Contains(t, msg, "Entry: $182.50")
	assert.Contains(t, msg, "Position: $5000 (5.0% of portfolio, MODERATE profile)")
	assert.Contains(t, msg, "Stop loss: $173.38 (-5.0%)")
	assert.Contains(t, msg, "Risk/Reward: 1:2.4")
	assert.Contains(t, msg, "TP1: $204.49 (+12.0%) sell 33%")
	assert.Contains(t, msg, "TP3: $248.46 (+36.1%) sell 34%")
	assert.Contains(t, msg, "<b>Holding period:</b> 2-3 months (position)")
}
