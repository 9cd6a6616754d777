// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSV struct {
	w *csv.Writer
	f *os.File
}

var csvHeader = []string{
	"setup_id", "symbol", "market", "tier", "profile", "entry_price",
	"position_size_usd", "position_size_pct", "stop_loss", "stop_loss_pct",
	"take_profit_1", "take_profit_2", "take_profit_3", "risk_reward",
	"holding_period", "created_at",
}

func NewCSV(path string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	return &CSV{w: w, f: f}, nil
}

func (j *CSV) RecordSetup(r SetupRecord) error {
	j.w.Write([]string{
		r.SetupID,
		r.Symbol,
		r.Market,
		r.Tier,
		r.Profile,
		f(r.EntryPrice),
		f(r.PositionSizeUSD),
		f(r.PositionSizePct),
		f(r.StopLoss),
		f(r.StopLossPct),
		f(r.TakeProfit1),
		f(r.TakeProfit2),
		f(r.TakeProfit3),
		f(r.RiskReward),
		r.HoldingPeriod,
		r.CreatedAt.Format(time.RFC3339),
	})
	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
