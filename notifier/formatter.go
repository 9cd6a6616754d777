package notifier

import (
	"fmt"
	"strings"

	"github.com/ultrasignals/tradeplan/risk"
)

var tierHeadings = map[risk.ScoreTier]string{
	risk.HiddenGem: "HIDDEN GEM",
	risk.Mega:      "MEGA OPPORTUNITY",
	risk.Ultra:     "ULTRA SIGNAL",
}

// FormatSetup renders a trade setup as a Telegram-ready HTML alert.
func FormatSetup(ts risk.TradeSetup) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<b>%s - %s</b> [%s]\n\n", ts.Symbol, tierHeadings[ts.Tier], ts.Market))

	b.WriteString("<b>Trade setup:</b>\n")
	b.WriteString(fmt.Sprintf("  Entry: $%.2f\n", ts.EntryPrice))
	b.WriteString(fmt.Sprintf("  Position: $%.0f (%.1f%% of portfolio, %s profile)\n",
		ts.PositionSizeUSD, ts.PositionSizePct, ts.Profile))
	b.WriteString(fmt.Sprintf("  Confidence: %.0f%%\n\n", ts.Confidence*100))

	b.WriteString("<b>Risk:</b>\n")
	b.WriteString(fmt.Sprintf("  Stop loss: $%.2f (-%.1f%%)\n", ts.StopLoss, ts.StopLossPct))
	b.WriteString(fmt.Sprintf("  Max loss: $%.0f\n", ts.MaxLossUSD))
	b.WriteString(fmt.Sprintf("  Risk/Reward: 1:%.1f\n\n", ts.RiskReward))

	b.WriteString("<b>Targets:</b>\n")
	b.WriteString(fmt.Sprintf("  TP1: $%.2f (+%.1f%%) sell %.0f%%\n", ts.TakeProfit1, ts.TakeProfitPct1, ts.ExitFraction1*100))
	b.WriteString(fmt.Sprintf("  TP2: $%.2f (+%.1f%%) sell %.0f%%\n", ts.TakeProfit2, ts.TakeProfitPct2, ts.ExitFraction2*100))
	b.WriteString(fmt.Sprintf("  TP3: $%.2f (+%.1f%%) sell %.0f%%\n\n", ts.TakeProfit3, ts.TakeProfitPct3, ts.ExitFraction3*100))

	b.WriteString(fmt.Sprintf("<b>Holding period:</b> %s\n", ts.HoldingPeriod))
	b.WriteString(fmt.Sprintf("<b>Expected profit:</b> $%.0f\n", ts.ExpectedProfitUSD))

	return b.String()
}
