package risk

import (
	"fmt"

	"github.com/ultrasignals/tradeplan/market"
)

// Take-profit ladder: three staged exits above entry. Base percentages are
// interpolated linearly in score across the signal band [65, 100] within
// fixed ranges, then scaled by a volatility bonus and the market's target
// multiplier. Exit fractions are fixed regardless of inputs.

// Target is one rung of the ladder.
type Target struct {
	Price        float64
	Pct          float64 // percent above entry, positive magnitude
	ExitFraction float64 // share of the position to close here
}

// tpRanges are the documented base ranges each level interpolates over.
var tpRanges = [3]struct{ lo, hi float64 }{
	{10, 15},
	{20, 30},
	{30, 45},
}

// ExitFractions is the fixed staged-exit split, summing to 1.0.
var ExitFractions = [3]float64{0.33, 0.33, 0.34}

// volBonusThreshold widens all three targets for volatile assets, which are
// expected to swing further once they move.
const (
	volBonusThreshold = 30.0
	volBonus          = 1.3
)

// scoreFraction maps score linearly from the signal band onto [0, 1].
// Monotonic and continuous across tier boundaries.
func scoreFraction(score float64) float64 {
	f := (score - MinSignalScore) / (100 - MinSignalScore)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// takeProfits builds the three-level ladder. Ordering is verified after all
// multipliers are applied; a broken ladder is a table bug, not bad input.
func (e *Engine) takeProfits(score, volatility float64, m market.Market, entry float64) ([3]Target, error) {
	f := scoreFraction(score)

	bonus := 1.0
	if volatility > volBonusThreshold {
		bonus = volBonus
	}
	mult := e.markets[m].Target

	var out [3]Target
	for i, r := range tpRanges {
		pct := (r.lo + f*(r.hi-r.lo)) * bonus * mult
		out[i] = Target{
			Price:        entry * (1 + pct/100),
			Pct:          pct,
			ExitFraction: ExitFractions[i],
		}
	}

	for i := 0; i < 3; i++ {
		if out[i].Price <= entry {
			return out, fmt.Errorf("%w: take-profit %d price %.4f not above entry %.4f",
				ErrInvariant, i+1, out[i].Price, entry)
		}
		if i > 0 && out[i].Pct <= out[i-1].Pct {
			return out, fmt.Errorf("%w: take-profit ladder out of order (%.2f%% then %.2f%%)",
				ErrInvariant, out[i-1].Pct, out[i].Pct)
		}
	}

	return out, nil
}
