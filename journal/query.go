package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const selectColumns = `setup_id, symbol, market, tier, profile, entry_price,
	position_size_usd, position_size_pct, stop_loss, stop_loss_pct,
	take_profit_1, take_profit_2, take_profit_3, risk_reward,
	holding_period, created_at`

func scanRecord(row interface{ Scan(...any) error }) (SetupRecord, error) {
	var r SetupRecord
	err := row.Scan(
		&r.SetupID,
		&r.Symbol,
		&r.Market,
		&r.Tier,
		&r.Profile,
		&r.EntryPrice,
		&r.PositionSizeUSD,
		&r.PositionSizePct,
		&r.StopLoss,
		&r.StopLossPct,
		&r.TakeProfit1,
		&r.TakeProfit2,
		&r.TakeProfit3,
		&r.RiskReward,
		&r.HoldingPeriod,
		&r.CreatedAt,
	)
	return r, err
}

// GetSetup returns a single setup record by ID.
func (j *SQLite) GetSetup(setupID string) (SetupRecord, error) {
	row := j.db.QueryRow(`SELECT `+selectColumns+` FROM setups WHERE setup_id = ?`, setupID)

	rec, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return SetupRecord{}, fmt.Errorf("setup %q not found", setupID)
		}
		return SetupRecord{}, err
	}
	return rec, nil
}

// ListSetupsCreatedBetween returns setups whose created_at is within [start, end).
func (j *SQLite) ListSetupsCreatedBetween(start, end time.Time) ([]SetupRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+selectColumns+`
		FROM setups
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

// ListSetupsBySymbol returns every recorded setup for a symbol, newest last.
func (j *SQLite) ListSetupsBySymbol(symbol string) ([]SetupRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+selectColumns+`
		FROM setups
		WHERE symbol = ?
		ORDER BY created_at ASC`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func collect(rows *sql.Rows) ([]SetupRecord, error) {
	var out []SetupRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
