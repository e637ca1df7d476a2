package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level ledgersim.yaml configuration. Policy inputs
// (required bank reserves, annual budget surplus) are deliberately not here:
// they are per-run parameters passed to the engine.
type Config struct {
	Economy  EconomyConfig  `yaml:"economy"`
	Behavior BehaviorConfig `yaml:"behavior"`
	Credit   CreditConfig   `yaml:"credit"`
	Fiat     FiatConfig     `yaml:"fiat"`
	Run      RunConfig      `yaml:"run"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// EconomyConfig seeds the initial state shared by both regimes.
type EconomyConfig struct {
	WorkerPool         int     `yaml:"worker_pool"`
	StartingCPI        float64 `yaml:"starting_cpi"`
	StartingWage       float64 `yaml:"starting_wage"`
	RealStartupCapital float64 `yaml:"real_startup_capital"`
	MoneySupply        float64 `yaml:"money_supply"` // credit-mode bank seed
}

// BehaviorConfig holds the spending propensities shared by both regimes.
type BehaviorConfig struct {
	PayrollShare         float64 `yaml:"payroll_share"`          // of firm cash, credit mode
	WorkerSpendShare     float64 `yaml:"worker_spend_share"`     // of worker cash
	CapitalistSpendShare float64 `yaml:"capitalist_spend_share"` // of cash above reserve
	DividendShare        float64 `yaml:"dividend_share"`         // of firm cash
}

// CreditConfig holds credit-regime constants.
type CreditConfig struct {
	LendingIncrement  float64 `yaml:"lending_increment"`
	StartupCapital    float64 `yaml:"startup_capital"`
	CapitalistReserve float64 `yaml:"capitalist_reserve"`
	LoanAnnualRatePct float64 `yaml:"loan_annual_rate_pct"`
	LoanTermYears     int     `yaml:"loan_term_years"`
}

// FiatConfig holds fiat-regime constants.
type FiatConfig struct {
	CapitalistReserve  float64 `yaml:"capitalist_reserve"`
	WorkersPerBusiness int     `yaml:"workers_per_business"`
}

// RunConfig holds default run lengths in years.
type RunConfig struct {
	CreditYears int `yaml:"credit_years"`
	FiatYears   int `yaml:"fiat_years"`
}

// LoggingConfig controls the run log.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads a ledgersim.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate rejects configurations the step engine cannot run.
func (c *Config) Validate() error {
	if c.Economy.WorkerPool <= 0 {
		return fmt.Errorf("economy.worker_pool must be positive, got %d", c.Economy.WorkerPool)
	}
	if c.Economy.StartingCPI <= 0 {
		return fmt.Errorf("economy.starting_cpi must be positive, got %g", c.Economy.StartingCPI)
	}
	if c.Credit.LendingIncrement <= 0 {
		return fmt.Errorf("credit.lending_increment must be positive, got %g", c.Credit.LendingIncrement)
	}
	if c.Credit.StartupCapital <= 0 {
		return fmt.Errorf("credit.startup_capital must be positive, got %g", c.Credit.StartupCapital)
	}
	if c.Economy.RealStartupCapital <= 0 {
		return fmt.Errorf("economy.real_startup_capital must be positive, got %g", c.Economy.RealStartupCapital)
	}
	return nil
}

// Default returns the reference parameterization of the simulator.
func Default() *Config {
	return &Config{
		Economy: EconomyConfig{
			WorkerPool:         100,
			StartingCPI:        100,
			StartingWage:       0.6,
			RealStartupCapital: 2.5,
			MoneySupply:        100,
		},
		Behavior: BehaviorConfig{
			PayrollShare:         0.6,
			WorkerSpendShare:     0.9,
			CapitalistSpendShare: 0.4,
			DividendShare:        0.1,
		},
		Credit: CreditConfig{
			LendingIncrement:  5,
			StartupCapital:    2.5,
			CapitalistReserve: 10,
			LoanAnnualRatePct: 4,
			LoanTermYears:     5,
		},
		Fiat: FiatConfig{
			CapitalistReserve:  3,
			WorkersPerBusiness: 3,
		},
		Run: RunConfig{
			CreditYears: 25,
			FiatYears:   10,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "logs/ledgersim.log",
		},
	}
}
