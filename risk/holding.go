package risk

import (
	"fmt"

	"github.com/ultrasignals/tradeplan/market"
)

// HoldingPeriod is the expected holding window for a setup: a descriptive
// range plus an urgency label for the alert text.
type HoldingPeriod struct {
	Range   string
	Urgency string
}

func (h HoldingPeriod) String() string {
	if h.Urgency == "" {
		return h.Range
	}
	return h.Range + " (" + h.Urgency + ")"
}

// HoldingKey addresses one row of the holding-period table.
type HoldingKey struct {
	Market market.Market
	Tier   ScoreTier
}

// DefaultHoldingPeriods covers every supported (market, tier) pair. Crypto
// turns over in days, equities in weeks to months, BIST and commodities the
// slowest. An unmapped pair is a configuration error, never a silent
// default.
var DefaultHoldingPeriods = map[HoldingKey]HoldingPeriod{
	{market.Crypto, HiddenGem}: {"1-2 weeks", "swing"},
	{market.Crypto, Mega}:      {"5-10 days", "swing"},
	{market.Crypto, Ultra}:     {"3-7 days", "fast exit"},

	{market.Nasdaq, HiddenGem}: {"2-3 months", "position"},
	{market.Nasdaq, Mega}:      {"4-8 weeks", "position"},
	{market.Nasdaq, Ultra}:     {"2-4 weeks", "swing"},

	{market.Xetra, HiddenGem}: {"2-3 months", "position"},
	{market.Xetra, Mega}:      {"4-8 weeks", "position"},
	{market.Xetra, Ultra}:     {"2-4 weeks", "swing"},

	{market.BIST, HiddenGem}: {"3-6 months", "long hold"},
	{market.BIST, Mega}:      {"2-3 months", "position"},
	{market.BIST, Ultra}:     {"3-6 weeks", "swing"},

	{market.Emtia, HiddenGem}: {"3-6 months", "long hold"},
	{market.Emtia, Mega}:      {"2-3 months", "position"},
	{market.Emtia, Ultra}:     {"3-6 weeks", "swing"},
}

func (e *Engine) holdingPeriod(m market.Market, tier ScoreTier) (HoldingPeriod, error) {
	h, ok := e.holding[HoldingKey{m, tier}]
	if !ok {
		return HoldingPeriod{}, fmt.Errorf("%w: no holding period for market %s tier %s", ErrConfiguration, m, tier)
	}
	return h, nil
}
