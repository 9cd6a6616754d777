package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordSetup(r SetupRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO setups
		(setup_id, symbol, market, tier, profile, entry_price,
		 position_size_usd, position_size_pct, stop_loss, stop_loss_pct,
		 take_profit_1, take_profit_2, take_profit_3, risk_reward,
		 holding_period, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SetupID, r.Symbol, r.Market, r.Tier, r.Profile, r.EntryPrice,
		r.PositionSizeUSD, r.PositionSizePct, r.StopLoss, r.StopLossPct,
		r.TakeProfit1, r.TakeProfit2, r.TakeProfit3, r.RiskReward,
		r.HoldingPeriod, r.CreatedAt,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
