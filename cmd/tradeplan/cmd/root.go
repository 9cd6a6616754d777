package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradeplan",
	Short: "A trade-risk engine that turns scored signals into complete trade plans",
	Long: `Tradeplan converts scored trading signals into self-consistent trade plans.

Given a symbol, price, composite score, volatility, ATR and target market it
derives:
  - Position size (currency amount and portfolio fraction)
  - Protective stop-loss with an ATR floor
  - A three-tier take-profit ladder with staged exit fractions
  - Risk/reward ratio and an expected holding period

Setups can be journaled to CSV or SQLite and delivered as Telegram alerts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
