package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/outlay-dev/outlay/internal/capture"
	"github.com/outlay-dev/outlay/internal/engine"
	"github.com/outlay-dev/outlay/internal/model"
)

// FileName is the config file name inside a project root.
const FileName = "outlay.yaml"

// Config represents the top-level outlay.yaml configuration.
type Config struct {
	Budget     BudgetConfig `yaml:"budget"`
	Store      StoreConfig  `yaml:"store"`
	Git        GitConfig    `yaml:"git"`
	Categories []string     `yaml:"categories,omitempty"`
}

// BudgetConfig declares the user's income and savings target. Amounts are
// kept as strings in YAML so they stay exact; Goal parses them. When both
// income figures are set, the monthly one wins.
type BudgetConfig struct {
	MonthlyIncome string `yaml:"monthly_income,omitempty"`
	YearlyIncome  string `yaml:"yearly_income,omitempty"`
	SavingsGoal   string `yaml:"savings_goal"`
}

// StoreConfig locates the expense ledger.
type StoreConfig struct {
	File string `yaml:"file"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads an outlay.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Budget: BudgetConfig{
			SavingsGoal: "0.00",
		},
		Store: StoreConfig{
			File: "expenses.csv",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Outlay",
			AuthorEmail: "outlay@localhost",
		},
		Categories: capture.DefaultCategories,
	}
}

// Goal resolves the configured budget into a monthly BudgetGoal. A yearly
// income is split evenly across twelve months when no monthly figure is set.
func (c *Config) Goal() (model.BudgetGoal, error) {
	savings, err := parseAmount("savings_goal", c.Budget.SavingsGoal)
	if err != nil {
		return model.BudgetGoal{}, err
	}

	income := decimal.Zero
	switch {
	case c.Budget.MonthlyIncome != "":
		income, err = parseAmount("monthly_income", c.Budget.MonthlyIncome)
		if err != nil {
			return model.BudgetGoal{}, err
		}
	case c.Budget.YearlyIncome != "":
		yearly, err := parseAmount("yearly_income", c.Budget.YearlyIncome)
		if err != nil {
			return model.BudgetGoal{}, err
		}
		income = yearly.Div(decimal.NewFromInt(12)).Round(2)
	}

	return model.BudgetGoal{Income: income, Savings: savings}, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, engine.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%q is not a number", s),
		}
	}
	return d, nil
}
