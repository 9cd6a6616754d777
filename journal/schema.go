// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS setups (
	setup_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	market TEXT NOT NULL,
	tier TEXT NOT NULL,
	profile TEXT NOT NULL,
	entry_price REAL NOT NULL,
	position_size_usd REAL NOT NULL,
	position_size_pct REAL NOT NULL,
	stop_loss REAL NOT NULL,
	stop_loss_pct REAL NOT NULL,
	take_profit_1 REAL NOT NULL,
	take_profit_2 REAL NOT NULL,
	take_profit_3 REAL NOT NULL,
	risk_reward REAL NOT NULL,
	holding_period TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_setups_symbol ON setups(symbol);
CREATE INDEX IF NOT EXISTS idx_setups_created_at ON setups(created_at);
`
