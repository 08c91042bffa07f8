package sim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoAgents      = errors.New("at least one agent required")
	ErrNoRounds      = errors.New("at least one round required")
	ErrBadPriceBand  = errors.New("price band empty or negative")
	ErrBadQuantity   = errors.New("max order quantity must be positive")
	ErrNegativeStake = errors.New("initial balances must be non-negative")
)

// Config holds one simulation run's parameters.
type Config struct {
	Agents       int   `yaml:"agents"`        // Number of trading agents
	Rounds       int   `yaml:"rounds"`        // Order intents per agent
	Seed         int64 `yaml:"seed"`          // Base RNG seed, offset per agent
	InitialMoney int64 `yaml:"initial_money"` // Opening cash per account
	InitialStock int64 `yaml:"initial_stock"` // Opening inventory per account
	PriceMin     int64 `yaml:"price_min"`     // Lowest limit price agents quote
	PriceMax     int64 `yaml:"price_max"`     // Highest limit price agents quote
	MaxQuantity  int64 `yaml:"max_quantity"`  // Largest single order size
}

func DefaultConfig() Config {
	return Config{
		Agents:       8,
		Rounds:       100,
		Seed:         1,
		InitialMoney: 100_000,
		InitialStock: 100,
		PriceMin:     900,
		PriceMax:     1100,
		MaxQuantity:  10,
	}
}

// LoadConfig reads and validates a YAML run configuration.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Agents < 1 {
		return ErrNoAgents
	}
	if c.Rounds < 1 {
		return ErrNoRounds
	}
	if c.PriceMin < 0 || c.PriceMax < c.PriceMin {
		return ErrBadPriceBand
	}
	if c.MaxQuantity < 1 {
		return ErrBadQuantity
	}
	if c.InitialMoney < 0 || c.InitialStock < 0 {
		return ErrNegativeStake
	}
	return nil
}
