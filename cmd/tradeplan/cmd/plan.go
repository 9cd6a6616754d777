package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ultrasignals/tradeplan/config"
	"github.com/ultrasignals/tradeplan/journal"
	"github.com/ultrasignals/tradeplan/market"
	"github.com/ultrasignals/tradeplan/notifier"
	"github.com/ultrasignals/tradeplan/risk"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a trade plan for one scored signal",
	Long: `Generate a complete trade plan from a scored signal.

Example:
  tradeplan plan --symbol AAPL --price 182.50 --score 88.7 --vol 25 --atr 3.65 --market NASDAQ`,
	RunE: runPlan,
}

var (
	planConfigPath string
	planSymbol     string
	planPrice      float64
	planScore      float64
	planVol        float64
	planATR        float64
	planMarket     string
	planRecord     bool
	planNotify     bool
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	planCmd.Flags().StringVarP(&planSymbol, "symbol", "s", "", "instrument symbol (required)")
	planCmd.Flags().Float64VarP(&planPrice, "price", "p", 0, "entry price (required)")
	planCmd.Flags().Float64Var(&planScore, "score", 0, "composite signal score, 0-100 (required)")
	planCmd.Flags().Float64Var(&planVol, "vol", 0, "realized volatility in percent")
	planCmd.Flags().Float64Var(&planATR, "atr", 0, "average true range in price units")
	planCmd.Flags().StringVarP(&planMarket, "market", "m", "", "target market (required)")
	planCmd.Flags().BoolVar(&planRecord, "record", false, "write the setup to the configured journal")
	planCmd.Flags().BoolVar(&planNotify, "notify", false, "send the setup as a Telegram alert")
	planCmd.MarkFlagRequired("symbol")
	planCmd.MarkFlagRequired("price")
	planCmd.MarkFlagRequired("score")
	planCmd.MarkFlagRequired("market")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(path)
}

func newEngine(cfg *config.Config) (*risk.Engine, error) {
	policy, err := cfg.EnginePolicy()
	if err != nil {
		return nil, err
	}
	return risk.NewEngine(policy)
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.SetupsFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	default:
		return nil, fmt.Errorf("journaling not configured (journal.type is %q)", cfg.Journal.Type)
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(planConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return fmt.Errorf("configure engine: %w", err)
	}

	m, err := market.Parse(planMarket)
	if err != nil {
		return err
	}

	setup, err := engine.Generate(risk.Inputs{
		Symbol:     planSymbol,
		Price:      planPrice,
		Score:      planScore,
		Volatility: planVol,
		ATR:        planATR,
		Market:     m,
	})
	if err != nil {
		return fmt.Errorf("generate setup: %w", err)
	}

	printSetup(setup)

	if planRecord {
		j, err := openJournal(cfg)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		rec := journal.NewRecord(setup)
		if err := j.RecordSetup(rec); err != nil {
			return fmt.Errorf("record setup: %w", err)
		}
		fmt.Printf("\nRecorded setup %s\n", rec.SetupID)
	}

	if planNotify {
		if !cfg.Telegram.Enabled {
			return fmt.Errorf("telegram is not enabled in the config")
		}
		tg := notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err := tg.SendWithRetry(cmd.Context(), notifier.FormatSetup(setup), 3); err != nil {
			return fmt.Errorf("send alert: %w", err)
		}
		fmt.Println("\nAlert sent")
	}

	return nil
}

func printSetup(ts risk.TradeSetup) {
	fmt.Printf("%s  [%s / %s / %s profile]\n", ts.Symbol, ts.Market, ts.Tier, ts.Profile)
	fmt.Printf("  Entry:      $%.2f\n", ts.EntryPrice)
	fmt.Printf("  Position:   $%.2f (%.2f%% of portfolio)\n", ts.PositionSizeUSD, ts.PositionSizePct)
	fmt.Printf("  Stop loss:  $%.2f (-%.2f%%, max loss $%.2f)\n", ts.StopLoss, ts.StopLossPct, ts.MaxLossUSD)
	fmt.Printf("  TP1:        $%.2f (+%.2f%%, sell %.0f%%)\n", ts.TakeProfit1, ts.TakeProfitPct1, ts.ExitFraction1*100)
	fmt.Printf("  TP2:        $%.2f (+%.2f%%, sell %.0f%%)\n", ts.TakeProfit2, ts.TakeProfitPct2, ts.ExitFraction2*100)
	fmt.Printf("  TP3:        $%.2f (+%.2f%%, sell %.0f%%)\n", ts.TakeProfit3, ts.TakeProfitPct3, ts.ExitFraction3*100)
	fmt.Printf("  R/R:        1:%.1f\n", ts.RiskReward)
	fmt.Printf("  Holding:    %s\n", ts.HoldingPeriod)
	fmt.Printf("  Confidence: %.0f%%\n", ts.Confidence*100)
}
