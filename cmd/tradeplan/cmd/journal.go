package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ultrasignals/tradeplan/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query recorded trade setups",
	Long: `Query and display trade setups recorded in a SQLite journal.

Subcommands:
  setup   - Get details of a specific setup by ID
  today   - List setups generated today
  day     - List setups generated on a specific day
  symbol  - List every setup recorded for a symbol

Examples:
  tradeplan journal setup <setup-id>
  tradeplan journal today
  tradeplan journal day 2025-10-03
  tradeplan journal symbol AAPL`,
}

var journalSetupCmd = &cobra.Command{
	Use:   "setup <setup-id>",
	Short: "Get details of a specific setup",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalSetup,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List setups generated today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List setups generated on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalSymbolCmd = &cobra.Command{
	Use:   "symbol <symbol>",
	Short: "List every setup recorded for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalSymbol,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalSetupCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)
	journalCmd.AddCommand(journalSymbolCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./tradeplan.sqlite", "path to SQLite journal DB")
}

func runJournalSetup(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.GetSetup(args[0])
	if err != nil {
		return fmt.Errorf("get setup: %w", err)
	}

	printRecord(rec)
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	return listDay(start)
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	day, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("invalid day %q, want YYYY-MM-DD", args[0])
	}
	return listDay(day)
}

func listDay(start time.Time) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListSetupsCreatedBetween(start, start.Add(24*time.Hour))
	if err != nil {
		return fmt.Errorf("list setups: %w", err)
	}

	printRecords(recs, start.Format("2006-01-02"))
	return nil
}

func runJournalSymbol(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListSetupsBySymbol(args[0])
	if err != nil {
		return fmt.Errorf("list setups: %w", err)
	}

	printRecords(recs, args[0])
	return nil
}

func printRecord(r journal.SetupRecord) {
	fmt.Printf("Setup %s  (%s)\n", r.SetupID, r.CreatedAt.Format(time.RFC3339))
	fmt.Printf("  %s  [%s / %s / %s profile]\n", r.Symbol, r.Market, r.Tier, r.Profile)
	fmt.Printf("  Entry:     $%.2f\n", r.EntryPrice)
	fmt.Printf("  Position:  $%.2f (%.2f%%)\n", r.PositionSizeUSD, r.PositionSizePct)
	fmt.Printf("  Stop loss: $%.2f (-%.2f%%)\n", r.StopLoss, r.StopLossPct)
	fmt.Printf("  Targets:   $%.2f / $%.2f / $%.2f\n", r.TakeProfit1, r.TakeProfit2, r.TakeProfit3)
	fmt.Printf("  R/R:       1:%.1f\n", r.RiskReward)
	fmt.Printf("  Holding:   %s\n", r.HoldingPeriod)
}

func printRecords(recs []journal.SetupRecord, label string) {
	if len(recs) == 0 {
		fmt.Printf("No setups recorded for %s\n", label)
		return
	}
	for i, r := range recs {
		if i > 0 {
			fmt.Println()
		}
		printRecord(r)
	}
	fmt.Printf("\n%d setups\n", len(recs))
}
