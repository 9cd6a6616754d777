package risk

import "fmt"

// Stop placement: a score-tier base percent widened by volatility, floored
// by 2x ATR so the stop never sits inside normal price noise.

// tierBaseStopPct narrows with signal confidence: high-conviction setups are
// expected to draw down less before working.
var tierBaseStopPct = map[ScoreTier]float64{
	HiddenGem: 5.0,
	Mega:      7.0,
	Ultra:     10.0,
}

// stopVolMultipliers widens the stop as volatility rises. Ordered table,
// highest threshold first; volatility in percent points.
var stopVolMultipliers = []struct {
	above float64
	mult  float64
}{
	{40, 1.5},
	{25, 1.2},
}

func stopWidener(volatility float64) float64 {
	for _, w := range stopVolMultipliers {
		if volatility > w.above {
			return w.mult
		}
	}
	return 1.0
}

// atrMultiple is the floor on stop distance, expressed in ATRs.
const atrMultiple = 2.0

// stopLoss returns the protective stop price and its distance below entry in
// percent points (positive magnitude). Fails when the combined stop would
// reach or pass zero price.
func (e *Engine) stopLoss(tier ScoreTier, volatility, atr, entry float64) (price, pct float64, err error) {
	scorePct := tierBaseStopPct[tier] * stopWidener(volatility)
	atrPct := atrMultiple * atr / entry * 100

	pct = scorePct
	if atrPct > pct {
		pct = atrPct
	}

	if pct >= 100 {
		return 0, 0, fmt.Errorf("%w: stop distance %.1f%% of entry %.4f (ATR %.4f) leaves no valid stop price",
			ErrInvalidInput, pct, entry, atr)
	}

	price = entry * (1 - pct/100)
	return price, pct, nil
}
