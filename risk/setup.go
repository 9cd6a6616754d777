package risk

import (
	"fmt"
	"math"

	"github.com/ultrasignals/tradeplan/market"
)

// Inputs is one scored signal as delivered by the upstream pipeline. The
// engine trusts the types but re-validates every range itself.
type Inputs struct {
	Symbol     string
	Price      float64
	Score      float64 // composite score, 0-100
	Volatility float64 // realized volatility, percent points
	ATR        float64 // average true range, same currency unit as Price
	Market     market.Market
}

// TradeSetup is the complete trade plan for one signal. It is a value type,
// built once per Generate call and never mutated afterward. All *Pct fields
// are positive magnitudes in percent points: StopLossPct is distance below
// entry, the take-profit percents distance above, PositionSizePct the share
// of the portfolio.
type TradeSetup struct {
	Symbol     string
	Market     market.Market
	Tier       ScoreTier
	Profile    Profile
	EntryPrice float64

	PositionSizeUSD float64
	PositionSizePct float64

	StopLoss    float64
	StopLossPct float64

	TakeProfit1    float64
	TakeProfit2    float64
	TakeProfit3    float64
	TakeProfitPct1 float64
	TakeProfitPct2 float64
	TakeProfitPct3 float64
	ExitFraction1  float64
	ExitFraction2  float64
	ExitFraction3  float64

	// RiskReward is reward over risk measured entry-to-TP1, reported to
	// humans as "1:x".
	RiskReward float64

	MaxLossUSD        float64
	ExpectedProfitUSD float64
	Confidence        float64
	HoldingPeriod     HoldingPeriod
}

// Policy is the engine's one-time configuration. Nil tables fall back to the
// package defaults.
type Policy struct {
	PortfolioValue float64
	Profile        Profile
	// MinPositionUSD is the smallest tradable position; computed sizes are
	// raised to it rather than emitting dust orders.
	MinPositionUSD float64
	Markets        map[market.Market]market.Multipliers
	HoldingPeriods map[HoldingKey]HoldingPeriod
}

// Engine generates trade setups. It holds only read-only configuration, so a
// single Engine is safe for concurrent use without locking.
type Engine struct {
	policy  Policy
	limits  ProfileLimits
	markets map[market.Market]market.Multipliers
	holding map[HoldingKey]HoldingPeriod
}

// NewEngine validates the policy and the completeness of its tables: every
// supported market needs positive multipliers and a holding-period row for
// every tier. Table gaps fail here, never mid-calculation.
func NewEngine(p Policy) (*Engine, error) {
	if p.PortfolioValue <= 0 {
		return nil, fmt.Errorf("%w: portfolio value must be positive, got %.2f", ErrConfiguration, p.PortfolioValue)
	}
	if p.MinPositionUSD < 0 {
		return nil, fmt.Errorf("%w: minimum position must not be negative, got %.2f", ErrConfiguration, p.MinPositionUSD)
	}
	limits, err := p.Profile.Limits()
	if err != nil {
		return nil, err
	}

	markets := p.Markets
	if markets == nil {
		markets = market.Defaults
	}
	holding := p.HoldingPeriods
	if holding == nil {
		holding = DefaultHoldingPeriods
	}

	e := &Engine{
		policy:  p,
		limits:  limits,
		markets: make(map[market.Market]market.Multipliers, len(markets)),
		holding: make(map[HoldingKey]HoldingPeriod, len(holding)),
	}
	// Copy so later mutation of the caller's maps cannot change an engine
	// already in use.
	for m, mult := range markets {
		if mult.Size <= 0 || mult.Target <= 0 {
			return nil, fmt.Errorf("%w: market %s multipliers must be positive (size %.2f, target %.2f)",
				ErrConfiguration, m, mult.Size, mult.Target)
		}
		e.markets[m] = mult
	}
	for k, h := range holding {
		e.holding[k] = h
	}
	for m := range e.markets {
		for _, tier := range []ScoreTier{HiddenGem, Mega, Ultra} {
			if _, ok := e.holding[HoldingKey{m, tier}]; !ok {
				return nil, fmt.Errorf("%w: no holding period for market %s tier %s", ErrConfiguration, m, tier)
			}
		}
	}

	return e, nil
}

// Profile reports the risk profile the engine was built with.
func (e *Engine) Profile() Profile { return e.policy.Profile }

// Generate derives the complete trade plan for one signal. Pure and
// deterministic: the same inputs against the same engine always produce the
// same setup or the same error.
func (e *Engine) Generate(in Inputs) (TradeSetup, error) {
	if err := e.validate(in); err != nil {
		return TradeSetup{}, err
	}

	tier, err := TierForScore(in.Score)
	if err != nil {
		return TradeSetup{}, err
	}

	sizeUSD, sizePct := e.positionSize(tier, in.Volatility, in.Market)

	stopPrice, stopPct, err := e.stopLoss(tier, in.Volatility, in.ATR, in.Price)
	if err != nil {
		return TradeSetup{}, err
	}

	targets, err := e.takeProfits(in.Score, in.Volatility, in.Market, in.Price)
	if err != nil {
		return TradeSetup{}, err
	}

	holding, err := e.holdingPeriod(in.Market, tier)
	if err != nil {
		return TradeSetup{}, err
	}

	rr, err := RiskReward(in.Price, stopPrice, targets[0].Price)
	if err != nil {
		return TradeSetup{}, err
	}

	if sum := targets[0].ExitFraction + targets[1].ExitFraction + targets[2].ExitFraction; math.Abs(sum-1.0) > 1e-9 {
		return TradeSetup{}, fmt.Errorf("%w: exit fractions sum to %.12f, want 1.0", ErrInvariant, sum)
	}

	return TradeSetup{
		Symbol:     in.Symbol,
		Market:     in.Market,
		Tier:       tier,
		Profile:    e.policy.Profile,
		EntryPrice: in.Price,

		PositionSizeUSD: sizeUSD,
		PositionSizePct: sizePct,

		StopLoss:    stopPrice,
		StopLossPct: stopPct,

		TakeProfit1:    targets[0].Price,
		TakeProfit2:    targets[1].Price,
		TakeProfit3:    targets[2].Price,
		TakeProfitPct1: targets[0].Pct,
		TakeProfitPct2: targets[1].Pct,
		TakeProfitPct3: targets[2].Pct,
		ExitFraction1:  targets[0].ExitFraction,
		ExitFraction2:  targets[1].ExitFraction,
		ExitFraction3:  targets[2].ExitFraction,

		RiskReward: rr,

		MaxLossUSD:        sizeUSD * stopPct / 100,
		ExpectedProfitUSD: sizeUSD * targets[1].Pct / 100,
		Confidence:        confidence(in.Score),
		HoldingPeriod:     holding,
	}, nil
}

func (e *Engine) validate(in Inputs) error {
	if in.Symbol == "" {
		return fmt.Errorf("%w: symbol must not be empty", ErrInvalidInput)
	}
	if in.Price <= 0 {
		return fmt.Errorf("%w: price must be positive, got %.4f", ErrInvalidInput, in.Price)
	}
	if in.Volatility < 0 {
		return fmt.Errorf("%w: volatility must not be negative, got %.2f", ErrInvalidInput, in.Volatility)
	}
	if in.ATR < 0 {
		return fmt.Errorf("%w: ATR must not be negative, got %.4f", ErrInvalidInput, in.ATR)
	}
	if _, ok := e.markets[in.Market]; !ok {
		return fmt.Errorf("%w: unsupported market %q", ErrInvalidInput, string(in.Market))
	}
	return nil
}

// RiskReward computes reward/risk for a long setup from entry, stop and the
// first take-profit. A non-positive risk or reward means the levels are
// structurally broken.
func RiskReward(entry, stop, takeProfit1 float64) (float64, error) {
	risk := entry - stop
	if risk <= 0 {
		return 0, fmt.Errorf("%w: stop %.4f not below entry %.4f", ErrInvariant, stop, entry)
	}
	reward := takeProfit1 - entry
	if reward <= 0 {
		return 0, fmt.Errorf("%w: take-profit %.4f not above entry %.4f", ErrInvariant, takeProfit1, entry)
	}
	return reward / risk, nil
}

// confidence scales the composite score into a capped 0-0.95 confidence.
func confidence(score float64) float64 {
	c := score / 100 * 1.1
	if c > 0.95 {
		c = 0.95
	}
	return c
}
