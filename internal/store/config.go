package store

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"broker-commission/internal/commission"
	"broker-commission/internal/money"
	"broker-commission/internal/types"
)

const (
	KindCommission = "commission"
	KindSummary    = "summary"
)

type TierConfig struct {
	Threshold float64 `yaml:"threshold"`
	Target    float64 `yaml:"target"`
}

// Job is one input file transformed into one output file.
type Job struct {
	Name      string `yaml:"name"`
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Kind      string `yaml:"kind"`
	Structure string `yaml:"structure"`
}

type Config struct {
	HomeCurrency string             `yaml:"home_currency"`
	Rates        map[string]float64 `yaml:"rates"`
	Commission   struct {
		Base      int64        `yaml:"base"`
		BonusUnit int64        `yaml:"bonus_unit"`
		Tiers     []TierConfig `yaml:"tiers"`
	} `yaml:"commission"`
	Jobs []Job `yaml:"jobs"`
	Log  struct {
		Dir           string `yaml:"dir"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"log"`
}

// DefaultJobs reproduces the classic run: three payout files from Cases.csv and
// a broker summary of the cumulative-bonus file.
func DefaultJobs() []Job {
	return []Job{
		{Name: "basic", Input: "Cases.csv", Output: "basicPay.csv", Kind: KindCommission, Structure: "none"},
		{Name: "bonus1", Input: "Cases.csv", Output: "bonus1Pay.csv", Kind: KindCommission, Structure: "structure1"},
		{Name: "bonus2", Input: "Cases.csv", Output: "bonus2Pay.csv", Kind: KindCommission, Structure: "structure2"},
		{Name: "summary", Input: "bonus2Pay.csv", Output: "bonusSummary.csv", Kind: KindSummary},
	}
}

func DefaultConfig() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.HomeCurrency == "" {
		c.HomeCurrency = "£"
	}
	if c.Rates == nil {
		c.Rates = map[string]float64{"$": 0.8}
	}
	if c.Commission.Base == 0 {
		c.Commission.Base = commission.DefaultBaseCommission
	}
	if c.Commission.BonusUnit == 0 {
		c.Commission.BonusUnit = commission.DefaultBonusUnit
	}
	if len(c.Commission.Tiers) == 0 {
		c.Commission.Tiers = []TierConfig{
			{Threshold: commission.Threshold1, Target: commission.Target1},
			{Threshold: commission.Threshold2, Target: commission.Target2},
		}
	}
	if len(c.Jobs) == 0 {
		c.Jobs = DefaultJobs()
	}
	for i := range c.Jobs {
		if c.Jobs[i].Name == "" {
			c.Jobs[i].Name = c.Jobs[i].Output
		}
		if c.Jobs[i].Kind == "" {
			c.Jobs[i].Kind = KindCommission
		}
	}
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
	if v := os.Getenv("COMMISSION_LOG_DIR"); v != "" {
		c.Log.Dir = v
	}
	if v := os.Getenv("COMMISSION_LOG_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Log.RetentionDays = n
		}
	}
}

func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.HomeCurrency) != 1 {
		return fmt.Errorf("home_currency must be a single symbol, got %q", c.HomeCurrency)
	}
	for sym, rate := range c.Rates {
		if utf8.RuneCountInString(sym) != 1 {
			return fmt.Errorf("rates: key %q must be a single symbol", sym)
		}
		if rate <= 0 {
			return fmt.Errorf("rates[%s] must be positive, got %v", sym, rate)
		}
	}
	if c.Commission.Base < 0 {
		return fmt.Errorf("commission.base must not be negative, got %d", c.Commission.Base)
	}
	if c.Commission.BonusUnit < 0 {
		return fmt.Errorf("commission.bonus_unit must not be negative, got %d", c.Commission.BonusUnit)
	}
	if len(c.Commission.Tiers) < 2 {
		return errors.New("commission.tiers needs at least two tiers")
	}
	for i, t := range c.Commission.Tiers {
		if t.Threshold < 0 {
			return fmt.Errorf("commission.tiers[%d].threshold must not be negative", i)
		}
		if t.Target <= 0 {
			return fmt.Errorf("commission.tiers[%d].target must be positive", i)
		}
	}

	outputs := map[string]string{}
	for i, j := range c.Jobs {
		if j.Input == "" || j.Output == "" {
			return fmt.Errorf("jobs[%d] needs both input and output", i)
		}
		switch j.Kind {
		case KindCommission:
			if _, err := types.ParseBonusStructure(j.Structure); err != nil {
				return fmt.Errorf("jobs[%d]: %w", i, err)
			}
		case KindSummary:
		default:
			return fmt.Errorf("jobs[%d]: kind must be %q or %q, got %q", i, KindCommission, KindSummary, j.Kind)
		}
		if prev, ok := outputs[j.Output]; ok {
			return fmt.Errorf("jobs[%d]: output %s already written by %s", i, j.Output, prev)
		}
		outputs[j.Output] = j.Name
	}
	return nil
}

// Scheme converts the commission section into a payout scheme.
func (c *Config) Scheme() commission.Scheme {
	s := commission.Scheme{Base: c.Commission.Base, BonusUnit: c.Commission.BonusUnit}
	for _, t := range c.Commission.Tiers {
		s.Tiers = append(s.Tiers, commission.NewTier(t.Threshold, t.Target))
	}
	return s
}

func (c *Config) CurrencyRates() money.Rates {
	return money.NewRates(c.Rates)
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}
