// journal/journal.go
package journal

import (
	"time"

	"github.com/ultrasignals/tradeplan/id"
	"github.com/ultrasignals/tradeplan/risk"
)

// SetupRecord is one generated trade setup flattened for storage.
type SetupRecord struct {
	SetupID         string
	Symbol          string
	Market          string
	Tier            string
	Profile         string
	EntryPrice      float64
	PositionSizeUSD float64
	PositionSizePct float64
	StopLoss        float64
	StopLossPct     float64
	TakeProfit1     float64
	TakeProfit2     float64
	TakeProfit3     float64
	RiskReward      float64
	HoldingPeriod   string
	CreatedAt       time.Time
}

// Journal persists setup records.
type Journal interface {
	RecordSetup(SetupRecord) error
	Close() error
}

// NewRecord flattens a trade setup into a record with a fresh ULID and the
// current UTC time.
func NewRecord(ts risk.TradeSetup) SetupRecord {
	return SetupRecord{
		SetupID:         id.New(),
		Symbol:          ts.Symbol,
		Market:          ts.Market.String(),
		Tier:            ts.Tier.String(),
		Profile:         ts.Profile.String(),
		EntryPrice:      ts.EntryPrice,
		PositionSizeUSD: ts.PositionSizeUSD,
		PositionSizePct: ts.PositionSizePct,
		StopLoss:        ts.StopLoss,
		StopLossPct:     ts.StopLossPct,
		TakeProfit1:     ts.TakeProfit1,
		TakeProfit2:     ts.TakeProfit2,
		TakeProfit3:     ts.TakeProfit3,
		RiskReward:      ts.RiskReward,
		HoldingPeriod:   ts.HoldingPeriod.String(),
		CreatedAt:       time.Now().UTC(),
	}
}
