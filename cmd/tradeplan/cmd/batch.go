package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"github.com/spf13/cobra"

	"github.com/ultrasignals/tradeplan/journal"
	"github.com/ultrasignals/tradeplan/market"
	"github.com/ultrasignals/tradeplan/notifier"
	"github.com/ultrasignals/tradeplan/risk"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate trade plans for a CSV of scored signals",
	Long: `Generate trade plans for every row of a signals CSV.

The file needs a header row with the columns:
  symbol,market,price,score,volatility,atr

Rows are processed concurrently; each setup is independent of the others.

Example:
  tradeplan batch --file signals.csv --record`,
	RunE: runBatch,
}

var (
	batchConfigPath string
	batchFile       string
	batchWorkers    int
	batchRecord     bool
	batchNotify     bool
)

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	batchCmd.Flags().StringVar(&batchFile, "file", "", "signals CSV file (required)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().BoolVar(&batchRecord, "record", false, "write each setup to the configured journal")
	batchCmd.Flags().BoolVar(&batchNotify, "notify", false, "send each setup as a Telegram alert")
	batchCmd.MarkFlagRequired("file")
}

type batchResult struct {
	row   int
	setup risk.TradeSetup
	err   error
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(batchConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return fmt.Errorf("configure engine: %w", err)
	}

	inputs, err := readSignalsCSV(batchFile)
	if err != nil {
		return fmt.Errorf("read signals: %w", err)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no signal rows in %s", batchFile)
	}

	workers := batchWorkers
	if workers < 1 {
		workers = 1
	}

	// Each setup is a pure function of its row, so the rows fan out to a
	// worker pool with no coordination beyond the channels.
	jobs := make(chan int)
	results := make(chan batchResult, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				setup, err := engine.Generate(inputs[i])
				results <- batchResult{row: i, setup: setup, err: err}
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(results)

	collected := make([]batchResult, 0, len(inputs))
	for r := range results {
		collected = append(collected, r)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].row < collected[j].row })

	var j journal.Journal
	if batchRecord {
		j, err = openJournal(cfg)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
	}

	var tg *notifier.Telegram
	if batchNotify {
		if !cfg.Telegram.Enabled {
			return fmt.Errorf("telegram is not enabled in the config")
		}
		tg = notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	}

	ok, failed := 0, 0
	for _, r := range collected {
		in := inputs[r.row]
		if r.err != nil {
			failed++
			fmt.Printf("✗ %-10s %v\n", in.Symbol, r.err)
			continue
		}
		ok++
		fmt.Printf("✓ %-10s entry $%.2f  size $%.0f (%.2f%%)  stop $%.2f  TP1 $%.2f  R/R 1:%.1f  %s\n",
			r.setup.Symbol, r.setup.EntryPrice, r.setup.PositionSizeUSD, r.setup.PositionSizePct,
			r.setup.StopLoss, r.setup.TakeProfit1, r.setup.RiskReward, r.setup.HoldingPeriod)

		if j != nil {
			if err := j.RecordSetup(journal.NewRecord(r.setup)); err != nil {
				return fmt.Errorf("record setup for %s: %w", in.Symbol, err)
			}
		}
		if tg != nil {
			if err := tg.SendWithRetry(cmd.Context(), notifier.FormatSetup(r.setup), 3); err != nil {
				return fmt.Errorf("send alert for %s: %w", in.Symbol, err)
			}
		}
	}

	fmt.Printf("\n%d setups generated, %d rows rejected\n", ok, failed)
	return nil
}

func readSignalsCSV(path string) ([]risk.Inputs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("empty file")
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, name := range []string{"symbol", "market", "price", "score", "volatility", "atr"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var out []risk.Inputs
	for n, row := range rows[1:] {
		m, err := market.Parse(row[col["market"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		nums := make(map[string]float64, 4)
		for _, name := range []string{"price", "score", "volatility", "atr"} {
			v, err := strconv.ParseFloat(row[col[name]], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad %s %q", n+2, name, row[col[name]])
			}
			nums[name] = v
		}
		out = append(out, risk.Inputs{
			Symbol:     row[col["symbol"]],
			Market:     m,
			Price:      nums["price"],
			Score:      nums["score"],
			Volatility: nums["volatility"],
			ATR:        nums["atr"],
		})
	}
	return out, nil
}
