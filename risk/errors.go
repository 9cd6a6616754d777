package risk

import "errors"

// The engine reports three distinct failure kinds. Callers discriminate with
// errors.Is and decide whether to drop the signal (ErrInvalidInput) or treat
// the failure as a deployment bug (ErrConfiguration, ErrInvariant).
var (
	// ErrInvalidInput marks a per-call input outside its allowed range:
	// non-positive price, score outside the signal band, negative
	// volatility/ATR, or an unsupported market.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration marks an incomplete engine configuration, such as a
	// supported market with no multiplier or holding-period entry. Raised at
	// construction, never mid-calculation.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvariant marks a computed setup that broke a structural guarantee
	// (stop at or above entry, take-profit ladder out of order, non-positive
	// risk/reward denominator). These indicate a table bug, not bad input,
	// and are never clamped into a best-guess setup.
	ErrInvariant = errors.New("invariant violation")
)
