package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ultrasignals/tradeplan/market"
	"github.com/ultrasignals/tradeplan/risk"
)

// Config represents the complete tradeplan configuration
type Config struct {
	Portfolio PortfolioConfig         `json:"portfolio" yaml:"portfolio"`
	Markets   map[string]MarketConfig `json:"markets,omitempty" yaml:"markets,omitempty"`
	Journal   JournalConfig           `json:"journal" yaml:"journal"`
	Telegram  TelegramConfig          `json:"telegram,omitempty" yaml:"telegram,omitempty"`
}

// PortfolioConfig contains the engine's risk configuration
type PortfolioConfig struct {
	Value          float64 `json:"value" yaml:"value"`
	Profile        string  `json:"profile" yaml:"profile"` // CONSERVATIVE, MODERATE or AGGRESSIVE
	MinPositionUSD float64 `json:"min_position_usd" yaml:"min_position_usd"`
}

// MarketConfig overrides the built-in multipliers for one market
type MarketConfig struct {
	SizeMultiplier   float64 `json:"size_multiplier" yaml:"size_multiplier"`
	TargetMultiplier float64 `json:"target_multiplier" yaml:"target_multiplier"`
}

// JournalConfig contains setup journaling parameters
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	SetupsFile string `json:"setups_file,omitempty" yaml:"setups_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// TelegramConfig contains alert delivery parameters
type TelegramConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	BotToken string `json:"bot_token,omitempty" yaml:"bot_token,omitempty"`
	ChatID   string `json:"chat_id,omitempty" yaml:"chat_id,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Portfolio.Value <= 0 {
		return fmt.Errorf("portfolio.value must be positive")
	}
	if _, err := risk.ParseProfile(c.Portfolio.Profile); err != nil {
		return fmt.Errorf("portfolio.profile: %s (want CONSERVATIVE, MODERATE or AGGRESSIVE)", c.Portfolio.Profile)
	}
	if c.Portfolio.MinPositionUSD < 0 {
		return fmt.Errorf("portfolio.min_position_usd must not be negative")
	}
	for name, mc := range c.Markets {
		if _, err := market.Parse(name); err != nil {
			return fmt.Errorf("markets.%s: %w", name, err)
		}
		if mc.SizeMultiplier <= 0 || mc.TargetMultiplier <= 0 {
			return fmt.Errorf("markets.%s: multipliers must be positive", name)
		}
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.SetupsFile == "" {
			return fmt.Errorf("journal.setups_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if c.Telegram.Enabled && (c.Telegram.BotToken == "" || c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id required when telegram is enabled")
	}
	return nil
}

// EnginePolicy translates the configuration into a risk.Policy, applying any
// per-market multiplier overrides on top of the built-in table.
func (c *Config) EnginePolicy() (risk.Policy, error) {
	profile, err := risk.ParseProfile(c.Portfolio.Profile)
	if err != nil {
		return risk.Policy{}, err
	}

	var markets map[market.Market]market.Multipliers
	if len(c.Markets) > 0 {
		markets = make(map[market.Market]market.Multipliers, len(market.Defaults))
		for m, mult := range market.Defaults {
			markets[m] = mult
		}
		for name, mc := range c.Markets {
			m, err := market.Parse(name)
			if err != nil {
				return risk.Policy{}, err
			}
			markets[m] = market.Multipliers{Size: mc.SizeMultiplier, Target: mc.TargetMultiplier}
		}
	}

	return risk.Policy{
		PortfolioValue: c.Portfolio.Value,
		Profile:        profile,
		MinPositionUSD: c.Portfolio.MinPositionUSD,
		Markets:        markets,
	}, nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Portfolio: PortfolioConfig{
			Value:          100000,
			Profile:        string(risk.Moderate),
			MinPositionUSD: 100,
		},
		Journal: JournalConfig{
			Type:       "csv",
			SetupsFile: "./setups.csv",
		},
	}
}
