package risk

import (
	"fmt"
	"strings"
)

// Profile names a risk-tolerance bundle. It is selected once when the engine
// is constructed and applies to every setup the engine produces.
type Profile string

const (
	Conservative Profile = "CONSERVATIVE"
	Moderate     Profile = "MODERATE"
	Aggressive   Profile = "AGGRESSIVE"
)

// ProfileLimits are the tunables a Profile resolves to.
type ProfileLimits struct {
	// MaxPositionPct caps a single position as a fraction of the portfolio.
	MaxPositionPct float64
	// MaxPortfolioHeat caps the total portfolio fraction at risk at once.
	// Carried for downstream aggregation; the engine itself sizes one trade
	// at a time.
	MaxPortfolioHeat float64
	// WinRate and AvgWinLoss describe the historical edge assumed for the
	// profile. Informational, reported alongside setups.
	WinRate    float64
	AvgWinLoss float64
}

var profiles = map[Profile]ProfileLimits{
	Conservative: {MaxPositionPct: 0.03, MaxPortfolioHeat: 0.10, WinRate: 0.55, AvgWinLoss: 2.0},
	Moderate:     {MaxPositionPct: 0.05, MaxPortfolioHeat: 0.15, WinRate: 0.50, AvgWinLoss: 2.5},
	Aggressive:   {MaxPositionPct: 0.08, MaxPortfolioHeat: 0.20, WinRate: 0.45, AvgWinLoss: 3.0},
}

// Limits resolves the profile to its tunables.
func (p Profile) Limits() (ProfileLimits, error) {
	l, ok := profiles[p]
	if !ok {
		return ProfileLimits{}, fmt.Errorf("%w: unknown risk profile %q", ErrConfiguration, string(p))
	}
	return l, nil
}

func (p Profile) String() string { return string(p) }

// ParseProfile converts a config string (case-insensitive) into a Profile.
func ParseProfile(s string) (Profile, error) {
	p := Profile(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := profiles[p]; !ok {
		return "", fmt.Errorf("%w: unknown risk profile %q", ErrConfiguration, s)
	}
	return p, nil
}
