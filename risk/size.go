package risk

import (
	"github.com/ultrasignals/tradeplan/market"
)

// Position sizing: portfolio value x profile ceiling, boosted by score tier,
// dampened by realized volatility, scaled by market, then clamped to the
// profile ceiling and the minimum tradable amount.

// tierBoost grows with signal confidence. Higher-confidence tiers take the
// larger share of the portfolio.
var tierBoost = map[ScoreTier]float64{
	HiddenGem: 1.2,
	Mega:      1.0,
	Ultra:     0.7,
}

// volDampeners is an ordered threshold table, highest threshold first.
// Volatility is in percent points.
var volDampeners = []struct {
	above float64
	mult  float64
}{
	{40, 0.6},
	{25, 0.8},
}

func sizeDampener(volatility float64) float64 {
	for _, d := range volDampeners {
		if volatility > d.above {
			return d.mult
		}
	}
	return 1.0
}

// positionSize returns the position in account currency and as percent of
// the portfolio. The tier and market have already been validated.
func (e *Engine) positionSize(tier ScoreTier, volatility float64, m market.Market) (usd, pct float64) {
	basePct := e.limits.MaxPositionPct * tierBoost[tier]
	finalPct := basePct * sizeDampener(volatility) * e.markets[m].Size

	// Never exceed the profile ceiling, never exceed the whole portfolio.
	if finalPct > e.limits.MaxPositionPct {
		finalPct = e.limits.MaxPositionPct
	}
	if finalPct > 1.0 {
		finalPct = 1.0
	}

	usd = e.policy.PortfolioValue * finalPct

	// Floor at the minimum tradable amount.
	if usd < e.policy.MinPositionUSD {
		usd = e.policy.MinPositionUSD
		finalPct = usd / e.policy.PortfolioValue
	}

	return usd, finalPct * 100
}
