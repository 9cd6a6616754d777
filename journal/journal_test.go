package journal

import (
	"github.com/ultrasignals/tradeplan/market"
	"github.com/ultrasignals/tradeplan/risk"
)

func sampleSetup() risk.TradeSetup {
	return risk.TradeSetup{
		Symbol:          "AAPL",
		Market:          market.Nasdaq,
		Tier:            risk.HiddenGem,
		Profile:         risk.Moderate,
		EntryPrice:      182.50,
		PositionSizeUSD: 5000,
		PositionSizePct: 5.0,
		StopLoss:        173.375,
		StopLossPct:     5.0,
		TakeProfit1:     204.49,
		TakeProfit2:     226.47,
		TakeProfit3:     248.46,
		TakeProfitPct1:  12.05,
		TakeProfitPct2:  24.09,
		TakeProfitPct3:  36.14,
		ExitFraction1:   0.33,
		ExitFraction2:   0.33,
		ExitFraction3:   0.34,
		RiskReward:      2.41,
		HoldingPeriod:   risk.HoldingPeriod{Range: "2-3 months", Urgency: "position"},
	}
}
