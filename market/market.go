// market/market.go
package market

import (
	"fmt"
	"sort"
	"strings"
)

// Market identifies an exchange/asset-class universe a signal belongs to.
// The set is closed: every Market listed here has a complete multiplier
// row in Defaults and a holding-period row for every score tier.
type Market string

const (
	BIST   Market = "BIST"
	Nasdaq Market = "NASDAQ"
	Crypto Market = "CRYPTO"
	Emtia  Market = "EMTIA" // commodities
	Xetra  Market = "XETRA"
)

// Multipliers are the per-market adjustment factors applied by the trade
// setup stages. Size scales position sizing, Target scales the take-profit
// ladder. BIST is the 1.0 baseline.
type Multipliers struct {
	Size   float64
	Target float64
}

// Defaults carries the stock multiplier table. Crypto sizes smaller but
// targets wider; NASDAQ the reverse.
var Defaults = map[Market]Multipliers{
	BIST:   {Size: 1.0, Target: 1.0},
	Nasdaq: {Size: 1.2, Target: 0.9},
	Crypto: {Size: 0.6, Target: 1.5},
	Emtia:  {Size: 0.8, Target: 1.1},
	Xetra:  {Size: 1.1, Target: 0.95},
}

// Supported returns the supported markets in stable order.
func Supported() []Market {
	out := make([]Market, 0, len(Defaults))
	for m := range Defaults {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid reports whether m is a supported market.
func (m Market) Valid() bool {
	_, ok := Defaults[m]
	return ok
}

func (m Market) String() string { return string(m) }

// Parse converts a user-supplied market name (case-insensitive) into a
// Market, or fails for anything outside the supported set.
func Parse(s string) (Market, error) {
	m := Market(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unsupported market %q (supported: %v)", s, Supported())
	}
	return m, nil
}
